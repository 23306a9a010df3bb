package scripts

import (
	"fmt"
	"log"
	"strings"

	"interact3d/internal/engine"
	"interact3d/internal/interact"
)

func init() {
	engine.RegisterComponent("Item", func(decode engine.ComponentDecoder) (engine.Component, error) {
		def := struct {
			Kind ItemType `yaml:"kind"`
		}{}
		if err := decode(&def); err != nil {
			return nil, err
		}
		return &Item{Type: def.Kind}, nil
	})
	engine.RegisterComponent("ItemInteraction", func(decode engine.ComponentDecoder) (engine.Component, error) {
		return NewItemInteraction(nil), nil
	})
}

type ItemType int

const (
	ItemNone ItemType = iota
	ItemMachine
	ItemLiquid
	ItemCapsule
	ItemAdditive
)

var itemTypeNames = [...]string{"none", "machine", "liquid", "capsule", "additive"}

func (t ItemType) String() string {
	if t < 0 || int(t) >= len(itemTypeNames) {
		return fmt.Sprintf("ItemType(%d)", int(t))
	}
	return itemTypeNames[t]
}

func (t *ItemType) UnmarshalText(text []byte) error {
	for i, name := range itemTypeNames {
		if name == string(text) {
			*t = ItemType(i)
			return nil
		}
	}
	return fmt.Errorf("unknown item type %q", text)
}

func (t ItemType) MarshalText() ([]byte, error) {
	return []byte(t.String()), nil
}

// Item tags an object with what it is when carried or clicked.
type Item struct {
	engine.BaseComponent
	Type ItemType
}

func itemTypeOf(o *interact.Interactable) ItemType {
	if o == nil {
		return ItemNone
	}
	if it := engine.GetComponent[*Item](o.GetGameObject()); it != nil {
		return it.Type
	}
	return ItemNone
}

// MachineContents is what has been put into a machine so far.
type MachineContents struct {
	Liquid         string
	CapsuleA       string
	CapsuleB       string
	Additive       string
	ExpectedResult string
}

func (c MachineContents) String() string {
	or := func(s, empty string) string {
		if s == "" {
			return empty
		}
		return s
	}
	var b strings.Builder
	b.WriteString("Machine Contents:\n")
	fmt.Fprintf(&b, "Liquid: %s\n", or(c.Liquid, "Empty"))
	fmt.Fprintf(&b, "Capsule A: %s\n", or(c.CapsuleA, "Empty"))
	fmt.Fprintf(&b, "Capsule B: %s\n", or(c.CapsuleB, "Empty"))
	fmt.Fprintf(&b, "Additive: %s\n", or(c.Additive, "Empty"))
	fmt.Fprintf(&b, "Expected Result: %s", or(c.ExpectedResult, "None"))
	return b.String()
}

// ActionTracker records machine contents and notifies on every change.
type ActionTracker struct {
	Changed engine.EventWithArg[MachineContents]

	contents MachineContents
}

func (a *ActionTracker) Contents() MachineContents {
	return a.contents
}

func (a *ActionTracker) set(field *string, value string) {
	if *field == value {
		return
	}
	*field = value
	a.Changed.Invoke(a.contents)
}

func (a *ActionTracker) Clear() {
	a.contents = MachineContents{}
	a.Changed.Invoke(a.contents)
}

// ItemInteraction sits on a machine. Clicking the machine while holding an
// item feeds the item to it: liquids are noted, capsules fill slot A then B,
// additives are noted. Consumed items are destroyed.
type ItemInteraction struct {
	engine.BaseComponent
	Tracker *ActionTracker

	interactable *interact.Interactable
}

func NewItemInteraction(tracker *ActionTracker) *ItemInteraction {
	if tracker == nil {
		tracker = &ActionTracker{}
	}
	return &ItemInteraction{Tracker: tracker}
}

func (h *ItemInteraction) Start() {
	h.interactable = engine.GetComponent[*interact.Interactable](h.GetGameObject())
	if h.interactable == nil {
		log.Printf("ItemInteraction %s: no Interactable to receive clicks", h.Name())
	}
}

func (h *ItemInteraction) OnClickedCustom(engine.RaycastResult) {
	o := h.interactable
	if o == nil || o.Registry == nil {
		return
	}
	h.HandleInteraction(o, o.Registry.Held())
}

// HandleInteraction acts on a clicked/held pair and reports whether the held
// item was used. Anything but a machine clicked while holding an item is
// ignored.
func (h *ItemInteraction) HandleInteraction(clicked, held *interact.Interactable) bool {
	if clicked == nil || held == nil || clicked == held {
		return false
	}
	if itemTypeOf(clicked) != ItemMachine {
		return false
	}

	t := h.Tracker
	switch itemTypeOf(held) {
	case ItemLiquid:
		t.set(&t.contents.Liquid, held.Name())
		return true
	case ItemCapsule:
		switch {
		case t.contents.CapsuleA == "":
			t.set(&t.contents.CapsuleA, held.Name())
		case t.contents.CapsuleB == "":
			t.set(&t.contents.CapsuleB, held.Name())
		default:
			log.Printf("ItemInteraction %s: capsule slots are full", clicked.Name())
			return false
		}
		consume(held)
		return true
	case ItemAdditive:
		t.set(&t.contents.Additive, held.Name())
		consume(held)
		return true
	}
	return false
}

// consume destroys the held item; its Interactable releases the registry.
func consume(o *interact.Interactable) {
	g := o.GetGameObject()
	if g == nil || g.Scene == nil {
		return
	}
	if g.Scene.World != nil {
		g.Scene.World.Destroy(g)
		return
	}
	g.Scene.Destroy(g)
}
