package server

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"git.appkode.ru/pub/go/failure"

	"profit/internal/domain/entity"
	"profit/internal/domain/value"
	"profit/pkg/errcodes"
	"profit/pkg/httpx/reply"
	"profit/pkg/httpx/req"
	"profit/pkg/rest"
)

type profitService interface {
	CalculateProfit(ctx context.Context, operatorX, operatorY int) (entity.Profit, error)
	GetProfits(ctx context.Context, paging value.Paging) ([]entity.Profit, error)
}

type ProfitServer struct {
	profitService profitService
}

func NewProfitServer(profitService profitService) ProfitServer {
	return ProfitServer{
		profitService: profitService,
	}
}

func (s ProfitServer) getV1Profits(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	paging, err := parsePaging(r.URL.Query())
	if err != nil {
		return fmt.Errorf("parsePaging: %w", err)
	}

	profits, err := s.profitService.GetProfits(ctx, paging)
	if err != nil {
		return fmt.Errorf("profitService.GetProfits: %w", err)
	}

	reply.JSON(ctx, w, http.StatusOK, newRESTProfits(profits))

	return nil
}

func (s ProfitServer) postV1Profit(w http.ResponseWriter, r *http.Request) error {
	ctx := r.Context()

	var request rest.ProfitCalculateRequest

	if err := req.Read(r, &request); err != nil {
		return fmt.Errorf("req.Read: %w", err)
	}

	profit, err := s.profitService.CalculateProfit(ctx, *request.OperatorX, *request.OperatorY)
	if err != nil {
		return fmt.Errorf("profitService.CalculateProfit: %w", err)
	}

	reply.JSON(ctx, w, http.StatusCreated, newRESTProfit(profit))

	return nil
}

func parsePaging(query url.Values) (value.Paging, error) {
	pageNo, err := queryInt(query, "pageNo", value.DefaultPageNo)
	if err != nil {
		return value.Paging{}, err
	}

	pageSize, err := queryInt(query, "pageSize", value.DefaultPageSize)
	if err != nil {
		return value.Paging{}, err
	}

	paging, err := value.NewPaging(pageNo, pageSize)
	if err != nil {
		return value.Paging{}, fmt.Errorf("value.NewPaging: %w", err)
	}

	return paging, nil
}

func queryInt(query url.Values, name string, def int) (int, error) {
	raw := query.Get(name)
	if raw == "" {
		return def, nil
	}

	v, err := strconv.Atoi(raw)
	if err != nil {
		return 0, failure.NewInvalidArgumentError(
			fmt.Errorf("strconv.Atoi(%s): %w", name, err).Error(),
			failure.WithCode(errcodes.InvalidPaging),
			failure.WithDescription(name+" must be an integer"),
		)
	}

	return v, nil
}
