package transport

import (
	"context"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
)

//go:generate mockgen -source=$GOFILE -destination=mocks_test.go -package=$GOPACKAGE

type (
	ReviewBuilder interface {
		BuildSections(ctx context.Context, summary model.ExecutionSummary, network model.NetworkID) (*model.Review, error)
	}
)
