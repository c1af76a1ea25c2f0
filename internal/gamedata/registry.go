package gamedata

import (
	"errors"
	"fmt"
)

// EnemyRegistry holds one template per enemy kind.
type EnemyRegistry struct {
	byKind map[EnemyKind]*EnemyDef
}

// NewEnemyRegistry creates a registry from loaded enemy definitions. It
// fails unless every EnemyKind is defined exactly once, so lookups made
// during play cannot miss.
func NewEnemyRegistry(enemies []EnemyDef) (*EnemyRegistry, error) {
	registry := &EnemyRegistry{
		byKind: make(map[EnemyKind]*EnemyDef, len(enemies)),
	}
	for i := range enemies {
		def := &enemies[i]
		if err := def.resolve(); err != nil {
			return nil, err
		}
		if _, dup := registry.byKind[def.Kind]; dup {
			return nil, fmt.Errorf("enemy %s defined twice", def.ID)
		}
		registry.byKind[def.Kind] = def
	}
	for _, kind := range EnemyKinds {
		if _, ok := registry.byKind[kind]; !ok {
			return nil, fmt.Errorf("enemy %s missing from table", kind.ID())
		}
	}
	return registry, nil
}

// LoadEnemyRegistry loads and creates a registry from the embedded enemies.yaml.
func LoadEnemyRegistry() (*EnemyRegistry, error) {
	enemies, err := LoadEnemies()
	if err != nil {
		return nil, err
	}
	if len(enemies) == 0 {
		return nil, errors.New("no enemies loaded from enemies.yaml")
	}
	return NewEnemyRegistry(enemies)
}

// MustLoadEnemyRegistry loads a registry, panicking on error.
func MustLoadEnemyRegistry() *EnemyRegistry {
	registry, err := LoadEnemyRegistry()
	if err != nil {
		panic(err)
	}
	return registry
}

// Get returns the template for an enemy kind.
func (r *EnemyRegistry) Get(kind EnemyKind) *EnemyDef {
	return r.byKind[kind]
}

