package engine

type Component interface {
	Start()
	Update(deltaTime float32)
	SetGameObject(g *GameObject)
	GetGameObject() *GameObject
}

// LookProvider is implemented by components that control camera look direction.
// Used by Camera and other components that need to follow a look direction.
type LookProvider interface {
	GetLookDirection() (x, y, z float32)
	GetEyeHeight() float32
}

// Disabler is implemented by components that must drop transient state when
// their GameObject is deactivated.
type Disabler interface {
	OnDisable()
}

// Destroyer is implemented by components that release resources or shared
// state when their GameObject is destroyed.
type Destroyer interface {
	OnDestroy()
}

// BaseComponent provides default implementation for Component interface
type BaseComponent struct {
	gameObject *GameObject
}

func (b *BaseComponent) Start() {}

func (b *BaseComponent) Update(deltaTime float32) {}

func (b *BaseComponent) SetGameObject(g *GameObject) {
	b.gameObject = g
}

func (b *BaseComponent) GetGameObject() *GameObject {
	return b.gameObject
}

// Name returns the owning GameObject's name, or "" when detached.
func (b *BaseComponent) Name() string {
	if b.gameObject == nil {
		return ""
	}
	return b.gameObject.Name
}
