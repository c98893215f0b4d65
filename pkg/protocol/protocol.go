// Package protocol defines the wire-level vocabulary of the game protocol:
// RPC opcodes, sync packet kinds, dialog styles, input key masks and
// movement speeds. The byte layout of packets themselves lives behind the
// transport; everything here is shared between the bot core and the tools.
package protocol

// RPC opcodes (0.3.7 dialect).
const (
	RPCSetPlayerPos       = 12
	RPCSetPlayerHealth    = 14
	RPCGivePlayerMoney    = 18
	RPCResetPlayerWeapons = 21
	RPCGivePlayerWeapon   = 22
	RPCClientJoin         = 25
	RPCEnterVehicle       = 26
	RPCWorldPlayerAdd     = 32
	RPCCreate3DTextLabel  = 36
	RPCCreateObject       = 44
	RPCDestroyObject      = 47
	RPCServerCommand      = 50
	RPCSpawn              = 52
	RPCDeath              = 53
	RPCUpdate3DTextLabel  = 58
	RPCShowDialog         = 61
	RPCDialogResponse     = 62
	RPCDestroyPickup      = 63
	RPCSetPlayerArmour    = 66
	RPCSetSpawnInfo       = 68
	RPCCreateExplosion    = 79
	RPCApplyAnimation     = 86
	RPCClientMessage      = 93
	RPCCreatePickup       = 95
	RPCChat               = 101
	RPCRequestClass       = 128
	RPCRequestSpawn       = 129
	RPCPickedUpPickup     = 131
	RPCServerJoin         = 137
	RPCServerQuit         = 138
	RPCInitGame           = 139
	RPCWorldPlayerRemove  = 163
	RPCWorldVehicleAdd    = 164
	RPCWorldVehicleRemove = 165
)

// PacketAuthKey is the channel carrying the join auth handshake.
const PacketAuthKey = 38

// Sync packet channels. Kinematic state rides these outside the RPC
// multiplexer, unreliable-sequenced.
const (
	PacketVehicleSync    = 200
	PacketAimSync        = 203
	PacketBulletSync     = 206
	PacketPlayerSync     = 207
	PacketMarkersSync    = 208
	PacketUnoccupiedSync = 209
	PacketTrailerSync    = 210
	PacketPassengerSync  = 211
)

// Dialog styles as sent by RPCShowDialog.
const (
	DialogStyleMsgBox         = 0
	DialogStyleInput          = 1
	DialogStyleList           = 2
	DialogStylePassword       = 3
	DialogStyleTabList        = 4
	DialogStyleTabListHeaders = 5
)

// On-foot key bitmasks. The up/down and left/right axes are separate
// analog words; KeyAnalogUp goes into the UD word, the rest into dwKeys.
const (
	KeyNone   uint32 = 0
	KeySprint uint32 = 8
	KeyWalk   uint32 = 1024

	KeyAnalogUp   uint16 = 0xFF80 // -128 on the UD axis
	KeyAnalogDown uint16 = 0x0080
)

// Movement speeds, in game units per 100 ms.
const (
	MoveSpeedAuto   float32 = -1.0
	MoveSpeedWalk   float32 = 0.1552086
	MoveSpeedRun    float32 = 0.56444
	MoveSpeedSprint float32 = 0.926784
)

// Movement types accepted by Bot.Go.
const (
	MoveTypeAuto = iota
	MoveTypeWalk
	MoveTypeRun
	MoveTypeSprint
	MoveTypeDrive
)

// ClientVersion is the game client version string sent during join.
const ClientVersion = "0.3.7"

// NetVersion is the protocol version number echoed in the join challenge.
const NetVersion = 4057

// MaxPlayers is the protocol-wide player slot limit.
const MaxPlayers = 1000
