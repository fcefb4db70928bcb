package services

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/foxentulhos/dumpster_rental_app/internal/apperrors"
	"github.com/foxentulhos/dumpster_rental_app/internal/core/domain"
	portssvc "github.com/foxentulhos/dumpster_rental_app/internal/core/ports/services"
	"github.com/foxentulhos/dumpster_rental_app/internal/platform/config"
)

// cepService looks up addresses on a ViaCEP-compatible postal code service.
type cepService struct {
	BaseService
	baseURL string
	client  *http.Client
}

// NewCEPService creates the postal code lookup service.
func NewCEPService(cfg *config.Config) portssvc.CEPSvcFacade {
	return &cepService{
		baseURL: cfg.CEPBaseURL,
		client:  &http.Client{Timeout: 5 * time.Second},
	}
}

var _ portssvc.CEPSvcFacade = (*cepService)(nil)

// viaCEPPayload mirrors the upstream response shape. The upstream signals an
// unknown CEP with {"erro": true} and HTTP 200.
type viaCEPPayload struct {
	CEP          string `json:"cep"`
	Street       string `json:"logradouro"`
	Complement   string `json:"complemento"`
	Neighborhood string `json:"bairro"`
	City         string `json:"localidade"`
	State        string `json:"uf"`
	Erro         bool   `json:"erro"`
}

func (s *cepService) Lookup(ctx context.Context, cep string) (*domain.CEPAddress, error) {
	url := fmt.Sprintf("%s/ws/%s/json/", s.baseURL, cep)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build CEP lookup request: %w", err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		s.LogWarn(ctx, "CEP lookup transport failure", "error", err.Error())
		return nil, apperrors.ErrUpstreamUnavailable
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusBadRequest:
		// Upstream rejects malformed CEPs with 400
		return nil, apperrors.ErrValidation
	case resp.StatusCode != http.StatusOK:
		s.LogWarn(ctx, "CEP lookup upstream error", "status", resp.Status)
		return nil, apperrors.ErrUpstreamUnavailable
	}

	var payload viaCEPPayload
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, apperrors.ErrUpstreamUnavailable
	}

	if payload.Erro {
		return nil, apperrors.ErrNotFound
	}

	return &domain.CEPAddress{
		CEP:          payload.CEP,
		Street:       payload.Street,
		Complement:   payload.Complement,
		Neighborhood: payload.Neighborhood,
		City:         payload.City,
		State:        payload.State,
	}, nil
}
