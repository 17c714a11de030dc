package world

// System represents a behavior that runs once per frame.
// Systems can declare Singleton fields for the resources they use, as well as
// custom state fields that persist between frames.
type System interface {
	Execute(frame *UpdateFrame)
}
