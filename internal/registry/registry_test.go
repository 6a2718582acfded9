package registry

import (
	"errors"
	"fmt"
	"testing"

	"github.com/vovakirdan/mindgym/internal/config"
	"github.com/vovakirdan/mindgym/internal/core"
)

// fakeGame is a minimal Game without variants.
type fakeGame struct {
	*core.Round
	id      string
	variant string
}

func newFake(id string) *fakeGame {
	return &fakeGame{Round: core.NewRound(id, core.Transitions{}), id: id, variant: "a"}
}

func (f *fakeGame) ID() string { return f.id }
func (f *fakeGame) Title() string { return "Fake " + f.id }
func (f *fakeGame) Kind() core.Kind { return core.Kind(f.id) }
func (f *fakeGame) Reset(core.RuntimeConfig) { f.Round.Reset(0) }
func (f *fakeGame) Start() {}
func (f *fakeGame) Submit(core.Input) {}
func (f *fakeGame) Render(*core.Screen) {}
func (f *fakeGame) State() core.GameState { return core.GameState{Variant: f.variant} }
func (f *fakeGame) Snapshot() core.Snapshot { return core.Snapshot{State: f.State()} }

// variantGame adds the "a" and "b" variants.
type variantGame struct{ *fakeGame }

func (v variantGame) Variants() []string { return []string{"a", "b"} }

func (v variantGame) SetVariant(tag string) error {
	if tag != "a" && tag != "b" {
		return fmt.Errorf("fake: bad variant %q", tag)
	}
	v.variant = tag
	return nil
}

func TestRegisterAndCreate(t *testing.T) {
	const id = "registry-test-fake"
	Register(id, func(*config.Config) Game { return variantGame{newFake(id)} })

	if !Exists(id) {
		t.Fatal("registered game not found")
	}
	info, ok := Info(id)
	if !ok || info.Title != "Fake "+id || len(info.Variants) != 2 {
		t.Errorf("Info() = %+v, %v", info, ok)
	}

	g, err := Create(id, nil)
	if err != nil || g.ID() != id {
		t.Fatalf("Create() = %v, %v", g, err)
	}

	g, err = CreateVariant(id, "b", nil)
	if err != nil || g.State().Variant != "b" {
		t.Errorf("CreateVariant(b) = %v, %v", g, err)
	}
	if _, err := CreateVariant(id, "zzz", nil); err == nil {
		t.Error("CreateVariant should reject unknown variants")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	const id = "registry-test-dup"
	Register(id, func(*config.Config) Game { return newFake(id) })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register did not panic")
		}
	}()
	Register(id, func(*config.Config) Game { return newFake(id) })
}

func TestUnknownGame(t *testing.T) {
	if _, err := Create("no-such-game", nil); !errors.Is(err, ErrUnknownGame) {
		t.Errorf("err = %v, expected ErrUnknownGame", err)
	}
}

func TestVariantOnPlainGame(t *testing.T) {
	const id = "registry-test-plain"
	Register(id, func(*config.Config) Game { return newFake(id) })

	if info, _ := Info(id); len(info.Variants) != 0 {
		t.Errorf("plain game reports variants %v", info.Variants)
	}
	if _, err := CreateVariant(id, "", nil); err != nil {
		t.Errorf("empty variant should keep the default: %v", err)
	}
	if _, err := CreateVariant(id, "a", nil); err == nil {
		t.Error("selecting a variant on a plain game should fail")
	}
}

func TestListOrder(t *testing.T) {
	list := List()
	for i := 1; i < len(list); i++ {
		if menuRank(list[i-1].Kind) > menuRank(list[i].Kind) {
			t.Errorf("List() out of order at %d: %s before %s", i, list[i-1].ID, list[i].ID)
		}
	}
}
