package main

import (
	"errors"
	"fmt"
	"log"

	lua "github.com/yuin/gopher-lua"

	"github.com/plus3/blockfall/game"
)

var errNoDecide = errors.New("script does not define decide(state)")

// ScriptIntentSystem lets a Lua script play. Every frame the script's global
// decide(state) is called with a table describing the frame and the active
// piece; it returns an intent name such as "move-left", or nil to do
// nothing. The script may call occupied(row, col) to inspect the grid.
type ScriptIntentSystem struct {
	Pushed int64
	Errors int64

	state  *lua.LState
	decide lua.LValue
	logger *log.Logger
	world  *game.World
	frames int64
}

// NewScriptIntentSystem runs src once and looks up its decide function.
func NewScriptIntentSystem(name, src string, logger *log.Logger) (*ScriptIntentSystem, error) {
	s := &ScriptIntentSystem{
		state:  lua.NewState(),
		logger: logger,
	}
	s.state.SetGlobal("occupied", s.state.NewFunction(s.occupied))

	if err := s.state.DoString(src); err != nil {
		s.state.Close()
		return nil, fmt.Errorf("load %s: %w", name, err)
	}

	s.decide = s.state.GetGlobal("decide")
	if s.decide.Type() != lua.LTFunction {
		s.state.Close()
		return nil, fmt.Errorf("load %s: %w", name, errNoDecide)
	}
	return s, nil
}

// Close releases the Lua state.
func (s *ScriptIntentSystem) Close() {
	s.state.Close()
}

func (s *ScriptIntentSystem) occupied(L *lua.LState) int {
	row, col := L.CheckInt(1), L.CheckInt(2)
	L.Push(lua.LBool(s.world != nil && s.world.Grid.Occupied(row, col)))
	return 1
}

func (s *ScriptIntentSystem) Execute(frame *game.UpdateFrame) {
	world := frame.World
	s.world = world
	s.frames++

	L := s.state
	state := L.NewTable()
	L.SetField(state, "frame", lua.LNumber(s.frames))
	L.SetField(state, "width", lua.LNumber(world.Grid.Width()))
	L.SetField(state, "height", lua.LNumber(world.Grid.Height()))
	L.SetField(state, "paused", lua.LBool(world.Clock.Paused()))
	if p := world.Active; p != nil {
		L.SetField(state, "variant", lua.LString(p.Variant.String()))
		L.SetField(state, "rotation", lua.LNumber(p.Rotation))
		L.SetField(state, "row", lua.LNumber(p.Position.Row))
		L.SetField(state, "col", lua.LNumber(p.Position.Col))
	}

	if err := L.CallByParam(lua.P{Fn: s.decide, NRet: 1, Protect: true}, state); err != nil {
		s.Errors++
		s.logger.Printf("decide: %v", err)
		return
	}
	ret := L.Get(-1)
	L.Pop(1)

	if ret == lua.LNil {
		return
	}
	name, ok := ret.(lua.LString)
	if !ok {
		s.Errors++
		s.logger.Printf("decide returned %s, want string or nil", ret.Type())
		return
	}
	intent, ok := game.ParseIntent(string(name))
	if !ok {
		s.Errors++
		s.logger.Printf("decide returned unknown intent %q", string(name))
		return
	}

	world.Push(intent)
	s.Pushed++
}
