package connect

import (
	"time"

	boardbotsv1 "github.com/louisbranch/boardbots/api/gen/go/boardbots/v1"
	"google.golang.org/protobuf/types/known/timestamppb"
)

type positionView struct {
	Row int32 `json:"row"`
	Col int32 `json:"col"`
}

type playerView struct {
	Name     string        `json:"name"`
	Pawn     *positionView `json:"pawn,omitempty"`
	Barriers int32         `json:"barriers"`
}

type pieceView struct {
	Type     string        `json:"type"`
	Position *positionView `json:"position,omitempty"`
	Owner    int32         `json:"owner"`
}

// gameView is the JSON shape returned by /connect.
type gameView struct {
	UUID        string       `json:"uuid"`
	Players     []playerView `json:"players"`
	CurrentTurn int32        `json:"current_turn"`
	StartDate   *time.Time   `json:"start_date,omitempty"`
	EndDate     *time.Time   `json:"end_date,omitempty"`
	Winner      int32        `json:"winner"`
	Board       []pieceView  `json:"board"`
}

func newGameView(resp *boardbotsv1.GameResponse) gameView {
	view := gameView{
		UUID:        resp.GetGameId().GetValue(),
		Players:     make([]playerView, 0, len(resp.GetPlayers())),
		CurrentTurn: resp.GetCurrentTurn(),
		StartDate:   timeOrNil(resp.GetStartDate()),
		EndDate:     timeOrNil(resp.GetEndDate()),
		Winner:      resp.GetWinner(),
		Board:       make([]pieceView, 0, len(resp.GetBoard())),
	}
	for _, player := range resp.GetPlayers() {
		view.Players = append(view.Players, playerView{
			Name:     player.GetPlayerName(),
			Pawn:     positionOrNil(player.GetPawnPosition()),
			Barriers: player.GetBarriers(),
		})
	}
	for _, piece := range resp.GetBoard() {
		view.Board = append(view.Board, pieceView{
			Type:     piece.GetType().String(),
			Position: positionOrNil(piece.GetPosition()),
			Owner:    piece.GetOwner(),
		})
	}
	return view
}

func positionOrNil(p *boardbotsv1.Position) *positionView {
	if p == nil {
		return nil
	}
	return &positionView{Row: p.GetRow(), Col: p.GetCol()}
}

func timeOrNil(ts *timestamppb.Timestamp) *time.Time {
	if ts == nil {
		return nil
	}
	t := ts.AsTime()
	return &t
}
