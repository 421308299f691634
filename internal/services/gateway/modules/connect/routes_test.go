package connect

import (
	"context"
	"encoding/json"
	"io"
	"log"
	"net"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	boardbotsv1 "github.com/louisbranch/boardbots/api/gen/go/boardbots/v1"
	module "github.com/louisbranch/boardbots/internal/services/gateway/module"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"
	"google.golang.org/protobuf/types/known/timestamppb"
)

const gameID = "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

type fakeGames struct {
	boardbotsv1.UnimplementedBoardbotsServiceServer
	tokens chan []string
	err    error
}

func (f *fakeGames) GetGames(ctx context.Context, in *boardbotsv1.GameRequest) (*boardbotsv1.GameResponse, error) {
	md, _ := metadata.FromIncomingContext(ctx)
	f.tokens <- md.Get("token")
	if f.err != nil {
		return nil, f.err
	}
	return &boardbotsv1.GameResponse{
		GameId:      in.GetGameId(),
		CurrentTurn: 1,
		StartDate:   timestamppb.New(time.Date(2026, 3, 4, 5, 6, 7, 0, time.UTC)),
		Players: []*boardbotsv1.PlayerState{
			{PlayerName: "alice", PawnPosition: &boardbotsv1.Position{Row: 0, Col: 4}, Barriers: 10},
		},
		Board: []*boardbotsv1.Piece{
			{Type: boardbotsv1.Piece_PAWN, Position: &boardbotsv1.Position{Row: 0, Col: 4}},
		},
	}, nil
}

func newBackend(t *testing.T, games *fakeGames) *grpc.ClientConn {
	t.Helper()
	listener := bufconn.Listen(1 << 20)
	server := grpc.NewServer()
	boardbotsv1.RegisterBoardbotsServiceServer(server, games)
	go func() { _ = server.Serve(listener) }()
	t.Cleanup(server.Stop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return listener.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	if err != nil {
		t.Fatalf("grpc.NewClient() error = %v", err)
	}
	t.Cleanup(func() { _ = conn.Close() })
	return conn
}

func newRouter(t *testing.T, backend grpc.ClientConnInterface) http.Handler {
	t.Helper()
	r := chi.NewRouter()
	deps := module.Dependencies{Backend: backend, RPCTimeout: 5 * time.Second, Logger: log.New(io.Discard, "", 0)}
	if err := New().Mount(deps, r); err != nil {
		t.Fatalf("Mount() error = %v", err)
	}
	return r
}

func get(handler http.Handler, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, target, nil))
	return rec
}

func TestMountRequiresBackend(t *testing.T) {
	t.Parallel()

	if err := New().Mount(module.Dependencies{}, chi.NewRouter()); err == nil {
		t.Fatal("expected missing backend error")
	}
}

func TestConnectSendsScopedToken(t *testing.T) {
	t.Parallel()

	games := &fakeGames{tokens: make(chan []string, 2)}
	handler := newRouter(t, newBackend(t, games))

	rec := get(handler, "/connect?id="+gameID+"&token=abc")
	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want %d: %s", rec.Code, http.StatusOK, rec.Body.String())
	}
	if got := <-games.tokens; len(got) != 1 || got[0] != "druidabc" {
		t.Fatalf("token metadata = %v, want [druidabc]", got)
	}

	var view gameView
	if err := json.Unmarshal(rec.Body.Bytes(), &view); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if view.UUID != gameID {
		t.Fatalf("uuid = %q, want %q", view.UUID, gameID)
	}
	if len(view.Players) != 1 || view.Players[0].Name != "alice" || view.Players[0].Barriers != 10 {
		t.Fatalf("players = %+v", view.Players)
	}
	if len(view.Board) != 1 || view.Board[0].Type != "PAWN" {
		t.Fatalf("board = %+v", view.Board)
	}
	if view.StartDate == nil || view.EndDate != nil {
		t.Fatalf("dates = %v/%v, want start only", view.StartDate, view.EndDate)
	}

	// A later call without a token must not inherit the earlier one.
	get(handler, "/connect?id="+gameID)
	if got := <-games.tokens; len(got) != 0 {
		t.Fatalf("token metadata = %v, want none", got)
	}
}

func TestConnectRejectsInvalidID(t *testing.T) {
	t.Parallel()

	games := &fakeGames{tokens: make(chan []string, 1)}
	handler := newRouter(t, newBackend(t, games))

	for _, target := range []string{"/connect", "/connect?id=not-a-uuid&token=abc"} {
		rec := get(handler, target)
		if rec.Code != http.StatusBadRequest {
			t.Fatalf("GET %s status = %d, want %d", target, rec.Code, http.StatusBadRequest)
		}
		var body map[string]string
		if err := json.Unmarshal(rec.Body.Bytes(), &body); err != nil {
			t.Fatalf("decode body: %v", err)
		}
		if body["error"] == "" {
			t.Fatalf("GET %s body = %v, want error", target, body)
		}
	}
	if len(games.tokens) != 0 {
		t.Fatal("backend called for invalid id")
	}
}

func TestConnectMapsBackendErrors(t *testing.T) {
	t.Parallel()

	cases := []struct {
		err  error
		want int
	}{
		{status.Error(codes.NotFound, "game not found"), http.StatusNotFound},
		{status.Error(codes.Unauthenticated, "bad token"), http.StatusUnauthorized},
		{status.Error(codes.Internal, "boom"), http.StatusInternalServerError},
	}
	for _, tc := range cases {
		games := &fakeGames{tokens: make(chan []string, 1), err: tc.err}
		rec := get(newRouter(t, newBackend(t, games)), "/connect?id="+gameID+"&token=abc")
		if rec.Code != tc.want {
			t.Fatalf("status for %v = %d, want %d", tc.err, rec.Code, tc.want)
		}
	}
}
