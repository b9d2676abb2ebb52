package main

// Input events arrive from the presentation adapter with coordinates
// already resolved to grid cells; the core never sees pixels.
type EventKind int

const (
	EventBoardClick EventKind = iota
	EventSkillPress
	EventKeyPress
	EventRematchResponse
)

type InputEvent struct {
	Kind   EventKind
	Cell   Move
	Skill  SkillID
	Key    string
	Accept bool
}

func BoardClickEvent(x, y int) InputEvent {
	return InputEvent{Kind: EventBoardClick, Cell: NewMove(x, y)}
}

func SkillPressEvent(id SkillID) InputEvent {
	return InputEvent{Kind: EventSkillPress, Skill: id}
}

func KeyPressEvent(key string) InputEvent {
	return InputEvent{Kind: EventKeyPress, Key: key}
}

func RematchResponseEvent(accept bool) InputEvent {
	return InputEvent{Kind: EventRematchResponse, Accept: accept}
}
