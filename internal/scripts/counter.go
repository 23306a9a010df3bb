package scripts

import (
	"log"

	"interact3d/internal/engine"
	"interact3d/internal/interact"
)

func init() {
	engine.RegisterComponent("ClickCounter", func(decode engine.ComponentDecoder) (engine.Component, error) {
		c := &ClickCounter{}
		def := struct {
			Label string `yaml:"label"`
		}{}
		if err := decode(&def); err != nil {
			return nil, err
		}
		c.Label = def.Label
		return c, nil
	})
}

// ClickCounter tallies clicks on its object's Interactable through the
// Clicked event.
type ClickCounter struct {
	engine.BaseComponent
	Label string

	count        int
	interactable *interact.Interactable
	listener     engine.ListenerID
}

func (c *ClickCounter) Start() {
	c.interactable = engine.GetComponent[*interact.Interactable](c.GetGameObject())
	if c.interactable == nil {
		log.Printf("ClickCounter %s: no Interactable to count", c.Name())
		return
	}
	c.listener = c.interactable.Clicked.AddListener(func(interact.ClickEvent) {
		c.count++
		if c.Label != "" {
			log.Printf("%s: %d", c.Label, c.count)
		}
	})
}

func (c *ClickCounter) Count() int {
	return c.count
}

func (c *ClickCounter) OnDestroy() {
	if c.interactable != nil {
		c.interactable.Clicked.RemoveListener(c.listener)
	}
}
