package connect

import (
	"context"
	"log"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	boardbotsv1 "github.com/louisbranch/boardbots/api/gen/go/boardbots/v1"
	apperrors "github.com/louisbranch/boardbots/internal/services/gateway/platform/errors"
	"github.com/louisbranch/boardbots/internal/services/gateway/platform/httpx"
	"github.com/louisbranch/boardbots/internal/services/shared/grpcauthctx"
	"google.golang.org/grpc"
)

type handlers struct {
	backend grpc.ClientConnInterface
	timeout time.Duration
	logger  *log.Logger
}

func (h handlers) handleConnect(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	rawID := strings.TrimSpace(query.Get("id"))
	id, err := uuid.Parse(rawID)
	if err != nil {
		h.writeError(w, apperrors.Wrap(apperrors.KindInvalidInput, "game id must be a UUID", err))
		return
	}

	conn := grpcauthctx.Intercept(h.backend, grpcauthctx.TokenUnaryClientInterceptor(query.Get("token")))
	client := boardbotsv1.NewBoardbotsServiceClient(conn)

	ctx, cancel := context.WithTimeout(httpx.RequestContext(r), h.timeout)
	defer cancel()
	resp, err := client.GetGames(ctx, &boardbotsv1.GameRequest{GameId: &boardbotsv1.UUID{Value: id.String()}})
	if err != nil {
		h.logger.Printf("connect: get game id=%s: %v", id, err)
		h.writeError(w, err)
		return
	}
	if err := httpx.WriteJSON(w, http.StatusOK, newGameView(resp)); err != nil {
		h.logger.Printf("connect: write game id=%s: %v", id, err)
	}
}

func (h handlers) writeError(w http.ResponseWriter, err error) {
	if writeErr := httpx.WriteJSONError(w, err); writeErr != nil {
		h.logger.Printf("connect: write error response: %v", writeErr)
	}
}
