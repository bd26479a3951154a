package flow

import "fmt"

type State int

const (
	Menu State = iota + 1
	Tutorial
	ActIntro
	Play
	LevelComplete
	GameOver
	Ending
)

func (s State) Name() string {
	switch s {
	case Menu:
		return "MENU"
	case Tutorial:
		return "TUTORIAL"
	case ActIntro:
		return "ACT_INTRO"
	case Play:
		return "PLAY"
	case LevelComplete:
		return "LEVEL_COMPLETE"
	case GameOver:
		return "GAME_OVER"
	case Ending:
		return "ENDING"
	default:
		return fmt.Sprintf("N/A(%d)", s)
	}
}

func (s State) String() string {
	return s.Name()
}
