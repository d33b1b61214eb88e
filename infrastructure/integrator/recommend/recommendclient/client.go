// Package recommendclient implementa o cliente HTTP do serviço externo
// de recomendações de eventos
package recommendclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"path"
	"time"

	"github.com/vfg2006/festival-manager-api/internal/config"
)

type Client interface {
	GetRecommendations(ctx context.Context, params RecommendationParams) (RecommendationResponse, error)
}

type RecommendationParams struct {
	EventID string `json:"eventId"`
}

// RecommendationItem é o formato de cada recomendação devolvida pelo serviço
type RecommendationItem struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Category    string `json:"category"`
}

type RecommendationResponse struct {
	Recommendations []RecommendationItem `json:"recommendations"`
}

type RecommendationClient struct {
	httpClient *http.Client
	config     *config.Config
}

func NewClient(cfg *config.Config) Client {
	return &RecommendationClient{
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		config: cfg,
	}
}

func (c *RecommendationClient) GetRecommendations(ctx context.Context, params RecommendationParams) (RecommendationResponse, error) {
	var response RecommendationResponse

	ctx, cancel := context.WithTimeout(ctx, 45*time.Second)
	defer cancel()

	// Construir a URL da requisição
	endpoint, err := url.Parse(c.config.Recommendation.URL)
	if err != nil {
		return response, fmt.Errorf("erro ao analisar a URL base: %w", err)
	}
	endpoint.Path = path.Join(endpoint.Path, "/event-recommendations")

	body, err := json.Marshal(params)
	if err != nil {
		return response, fmt.Errorf("erro ao serializar a requisição: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint.String(), bytes.NewReader(body))
	if err != nil {
		return response, fmt.Errorf("erro ao criar a requisição: %w", err)
	}

	req.Header.Set("Authorization", "Bearer "+c.config.Recommendation.AccessToken)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return response, fmt.Errorf("erro ao executar a requisição: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return response, fmt.Errorf("requisição falhou com status: %s", resp.Status)
	}

	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return response, fmt.Errorf("erro ao decodificar a resposta: %w", err)
	}

	return response, nil
}
