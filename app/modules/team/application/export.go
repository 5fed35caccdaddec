package teamservice

import (
	"context"
	"fmt"
	"time"

	"github.com/uptrace/bun"
	"github.com/xuri/excelize/v2"

	freeagentdb "github.com/Harbour-City-League/roster-bot/app/modules/freeagent/infrastructure/repositories"
	teamdb "github.com/Harbour-City-League/roster-bot/app/modules/team/infrastructure/repositories"
	"github.com/Harbour-City-League/roster-bot/app/shared/results"
	"github.com/Harbour-City-League/roster-bot/app/shared/telemetry"
	sharedtypes "github.com/Harbour-City-League/roster-bot/app/shared/types"
)

const freeAgentSheet = "Free Agents"

// ExportRoster builds an xlsx workbook with one sheet per registered team
// and a closing sheet of free agents. Membership is resolved live from the
// platform directory, so the export reflects role holders at call time.
func (s *TeamService) ExportRoster(ctx context.Context, guildID sharedtypes.GuildID) (ExportResult, error) {
	if ctx == nil {
		return ExportResult{}, ErrNilContext
	}

	return telemetry.WithTelemetry(ctx, s.deps, "ExportRoster", string(guildID),
		func(ctx context.Context) (ExportResult, error) {
			return telemetry.RunInTx(ctx, s.db, func(ctx context.Context, db bun.IDB) (ExportResult, error) {
				if guildID == "" {
					return results.FailureResult[ExportFile, error](ErrInvalidGuildID), nil
				}

				teams, err := s.repo.ListTeams(ctx, db, guildID)
				if err != nil {
					return ExportResult{}, err
				}
				if len(teams) == 0 {
					return results.FailureResult[ExportFile, error](ErrNoTeams), nil
				}

				listings, err := s.agents.ListListings(ctx, db, guildID)
				if err != nil {
					return ExportResult{}, err
				}

				file, err := s.buildWorkbook(ctx, guildID, teams, listings)
				if err != nil {
					return ExportResult{}, err
				}
				return results.SuccessResult[ExportFile, error](file), nil
			})
		})
}

func (s *TeamService) buildWorkbook(ctx context.Context, guildID sharedtypes.GuildID, teams []teamdb.Team, listings []freeagentdb.FreeAgentListing) (ExportFile, error) {
	f := excelize.NewFile()
	defer f.Close()

	for i := range teams {
		team := &teams[i]
		sheet := string(team.RoleID)
		if i == 0 {
			// excelize opens with a single default sheet.
			if err := f.SetSheetName("Sheet1", sheet); err != nil {
				return ExportFile{}, fmt.Errorf("failed to rename sheet: %w", err)
			}
		} else {
			if _, err := f.NewSheet(sheet); err != nil {
				return ExportFile{}, fmt.Errorf("failed to add sheet: %w", err)
			}
		}

		members, err := s.directory.MembersWithRole(ctx, guildID, team.RoleID)
		if err != nil {
			return ExportFile{}, fmt.Errorf("failed to resolve members: %w", err)
		}

		if err := setRow(f, sheet, 1, "Member ID", "Team Role", "Logo", "Roster Limit"); err != nil {
			return ExportFile{}, err
		}
		for row, member := range members {
			if err := setRow(f, sheet, row+2, string(member), string(team.RoleID), team.Logo, team.RosterLimit); err != nil {
				return ExportFile{}, err
			}
		}
	}

	if _, err := f.NewSheet(freeAgentSheet); err != nil {
		return ExportFile{}, fmt.Errorf("failed to add free agent sheet: %w", err)
	}
	if err := setRow(f, freeAgentSheet, 1, "User ID", "Region", "Position", "Description", "Listed At"); err != nil {
		return ExportFile{}, err
	}
	for row, listing := range listings {
		if err := setRow(f, freeAgentSheet, row+2,
			string(listing.UserID), string(listing.Region), string(listing.Position),
			listing.Description, listing.CreatedAt.Format(time.RFC3339)); err != nil {
			return ExportFile{}, err
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return ExportFile{}, fmt.Errorf("failed to serialize workbook: %w", err)
	}

	return ExportFile{
		FileName: fmt.Sprintf("roster-%s-%s.xlsx", guildID, time.Now().Format("2006-01-02")),
		Data:     buf.Bytes(),
	}, nil
}

func setRow(f *excelize.File, sheet string, row int, values ...any) error {
	for col, value := range values {
		cell, err := excelize.CoordinatesToCellName(col+1, row)
		if err != nil {
			return fmt.Errorf("failed to build cell name: %w", err)
		}
		if err := f.SetCellValue(sheet, cell, value); err != nil {
			return fmt.Errorf("failed to set cell: %w", err)
		}
	}
	return nil
}
