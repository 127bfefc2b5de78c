package entities

// Messages shown to the player for input mistakes.
const (
	MsgNoSuchItem  = "What?! You don't have THAT!"
	MsgNotEquipped = "You are not equipping THAT!"
	MsgCannotDrop  = "You cannot drop that item."
)
