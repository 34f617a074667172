package game

const (
	ErrorInvalidSlot       = "slot %d is out of range (expecting 0-%d)"
	ErrorUnknownTile       = "no interactive tile at %v"
	ErrorWrongTile         = "tile at %v is a %s, not a %s"
	ErrorBookClosed        = "book at %v is closed"
	ErrorPageOutOfBounds   = "page coordinate (%.2f, %.2f) is outside of the page"
	ErrorAnvilLocked       = "anvil at %v is locked by another player"
	ErrorTextTooLong       = "text is %d characters long, only %d are allowed"
	ErrorEmptyDrag         = "drag commit at %v carries no slots"
	ErrorHeldStackEmpty    = "drag commit at %v with an empty hand"
	ErrorUnknownMessage    = "unknown message id %d"
	ErrorMessageDecode     = "error decoding message %d: %v"
	ErrorMessageTrailing   = "message %d has %d trailing bytes"
	ErrorTooManyDragSlots  = "drag commit carries %d slots, at most %d are allowed"
	ErrorUnknownGui        = "unknown gui mode %d"
	ErrorOutOfReach        = "block at %v is %.2f blocks away, reach is %.2f"
	ErrorRateLimited       = "message rate limit exceeded"
	ErrorUnexpectedMessage = "unexpected %T from client"
	ErrorNotActivated      = "click on %v did nothing"
	ErrorBeaconInactive    = "beacon at %v has no pyramid below it"
	ErrorBeaconSecondary   = "beacon at %v needs %d levels for a secondary effect, has %d"
)
