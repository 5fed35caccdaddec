package sharedtypes

// GuildID identifies a single served community. It is the top-level tenant
// boundary for every configuration row and every command.
type GuildID string

// UserID identifies a platform member.
type UserID string

// RoleID identifies a platform role. Registered team roles are the sole
// membership marker for a team.
type RoleID string

// ChannelID identifies a platform channel.
type ChannelID string

// Region is a free agent's self-declared region.
type Region string

const (
	RegionEU Region = "EU"
	RegionNA Region = "NA"
	RegionSA Region = "SA"
	RegionAS Region = "AS"
	RegionOC Region = "OC"
	RegionAF Region = "AF"
)

// Valid reports whether r is a known region.
func (r Region) Valid() bool {
	switch r {
	case RegionEU, RegionNA, RegionSA, RegionAS, RegionOC, RegionAF:
		return true
	}
	return false
}

// Position is a free agent's self-declared playing position.
type Position string

const (
	PositionGK   Position = "GK"
	PositionDEF  Position = "DEF"
	PositionMID  Position = "MID"
	PositionATT  Position = "ATT"
	PositionFlex Position = "FLEX"
)

// Valid reports whether p is a known position.
func (p Position) Valid() bool {
	switch p {
	case PositionGK, PositionDEF, PositionMID, PositionATT, PositionFlex:
		return true
	}
	return false
}
