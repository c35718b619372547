package scenes

import "github.com/hajimehoshi/ebiten/v2"

// SceneChanger allows scenes to trigger transitions
type SceneChanger interface {
	ChangeScene(scene Scene)
}

// Scene is one screen of the game. Update returns ebiten.Termination to quit.
type Scene interface {
	Update() error
	Draw(screen *ebiten.Image)
}
