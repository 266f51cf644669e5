// Package transport exposes the review engine over HTTP.
package transport

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/goodnatureofminers/txreview-backend/internal/review/model"
	"github.com/goodnatureofminers/txreview-backend/internal/review/resolver"
	"github.com/goodnatureofminers/txreview-backend/internal/review/service/sections"
	"github.com/goodnatureofminers/txreview-backend/internal/review/wallet"
	gwruntime "github.com/grpc-ecosystem/grpc-gateway/v2/runtime"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	reviewSectionsPath = "/v1/review/sections"
	maxRequestBytes    = 4 << 20
)

// ReviewBuilderFactory builds a review builder bound to the wallet of one request.
type ReviewBuilderFactory func(w *wallet.Wallet) (ReviewBuilder, error)

// ReviewHandler serves POST /v1/review/sections.
type ReviewHandler struct {
	newBuilder   ReviewBuilderFactory
	defaultRatio decimal.Decimal
	marshaler    gwruntime.Marshaler
	logger       *zap.Logger
}

// NewReviewHandler returns a ReviewHandler instance. defaultRatio applies to requests without a
// wallet guarantee preference.
func NewReviewHandler(newBuilder ReviewBuilderFactory, defaultRatio decimal.Decimal, logger *zap.Logger) *ReviewHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReviewHandler{
		newBuilder:   newBuilder,
		defaultRatio: defaultRatio,
		marshaler:    &gwruntime.JSONBuiltin{},
		logger:       logger.Named("review_handler"),
	}
}

// Register mounts the handler on a gateway mux.
func (h *ReviewHandler) Register(mux *gwruntime.ServeMux) error {
	return mux.HandlePath(http.MethodPost, reviewSectionsPath, h.BuildSections)
}

// BuildSections decodes an execution summary, builds its review and applies guarantee edits.
func (h *ReviewHandler) BuildSections(w http.ResponseWriter, r *http.Request, _ map[string]string) {
	var req reviewRequest
	if err := h.marshaler.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBytes)).Decode(&req); err != nil {
		h.writeError(w, fmt.Errorf("%w: decode body: %v", ErrInvalidRequest, err))
		return
	}
	network, err := req.network()
	if err != nil {
		h.writeError(w, err)
		return
	}
	d := decoder{network: network}
	summary, err := d.summary(req.Summary)
	if err != nil {
		h.writeError(w, err)
		return
	}
	known, err := d.accounts(req.KnownAccounts)
	if err != nil {
		h.writeError(w, fmt.Errorf("known accounts: %w", err))
		return
	}
	userWallet, err := wallet.New(network, known, req.ratio(h.defaultRatio))
	if err != nil {
		h.writeError(w, fmt.Errorf("%w: %v", ErrInvalidRequest, err))
		return
	}
	builder, err := h.newBuilder(userWallet)
	if err != nil {
		h.writeError(w, fmt.Errorf("create review builder: %w", err))
		return
	}

	review, err := builder.BuildSections(r.Context(), summary, network)
	if errors.Is(err, sections.ErrUnclassified) {
		h.write(w, http.StatusOK, reviewResponse{Unclassified: true})
		return
	}
	if err != nil {
		h.writeError(w, err)
		return
	}
	for _, edit := range req.Guarantees {
		if err := d.applyGuarantee(review, edit); err != nil {
			h.writeError(w, err)
			return
		}
	}
	h.write(w, http.StatusOK, newReviewResponse(review))
}

func (h *ReviewHandler) write(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", h.marshaler.ContentType(body))
	w.WriteHeader(status)
	if err := h.marshaler.NewEncoder(w).Encode(body); err != nil {
		h.logger.Error("Failed to write response", zap.Error(err))
	}
}

func (h *ReviewHandler) writeError(w http.ResponseWriter, err error) {
	status := statusFor(err)
	if status >= http.StatusInternalServerError {
		h.logger.Error("Review failed", zap.Int("status", status), zap.Error(err))
	} else {
		h.logger.Debug("Review rejected", zap.Int("status", status), zap.Error(err))
	}
	h.write(w, status, errorResponse{Error: err.Error()})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, ErrInvalidRequest),
		errors.Is(err, sections.ErrUnknownNetwork),
		errors.Is(err, model.ErrGuaranteeNotFound),
		errors.Is(err, model.ErrInvalidGuarantee):
		return http.StatusBadRequest
	case errors.Is(err, resolver.ErrResourceEntityNotFound),
		errors.Is(err, resolver.ErrFailedToGetDataForAllNFTs),
		errors.Is(err, resolver.ErrMissingValidatorInformation):
		return http.StatusUnprocessableEntity
	case errors.Is(err, resolver.ErrResolutionFailure):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

// applyGuarantee edits the guarantee of the predicted deposit identified by resource and instruction index.
func (d decoder) applyGuarantee(review *model.Review, edit guaranteeEditDTO) error {
	resource, err := d.resource(edit.Resource)
	if err != nil {
		return err
	}
	index, err := d.instructionIndex(edit.InstructionIndex)
	if err != nil {
		return err
	}
	if (edit.Amount == nil) == (edit.Ratio == nil) {
		return fmt.Errorf("%w: guarantee of %s at %d needs exactly one of amount and ratio", ErrInvalidRequest, resource, index)
	}
	for id, g := range review.Guarantees {
		if g.Resource != resource || g.InstructionIndex != index {
			continue
		}
		if edit.Amount != nil {
			return review.ApplyGuarantee(id, *edit.Amount)
		}
		return review.ApplyGuaranteeRatio(id, *edit.Ratio)
	}
	return fmt.Errorf("%s at instruction %d: %w", resource, index, model.ErrGuaranteeNotFound)
}
