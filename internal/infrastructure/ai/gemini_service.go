// Package ai contiene los adaptadores hacia proveedores de LLM.
package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/jhoicas/CajaMenor-api/internal/application/ports"
)

// Verificar en tiempo de compilación que GeminiService implementa LLMService.
var _ ports.LLMService = (*GeminiService)(nil)

const (
	geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

	// systemPrompt define el rol del modelo: analista financiero de pymes que
	// resume patrones de gasto de caja menor en español, en texto plano corto.
	systemPrompt = `Eres un analista financiero especializado en pequeñas empresas de Latinoamérica.
Recibirás un resumen del gasto de caja menor de una empresa: totales, gastos pendientes,
saldo en custodias y los movimientos recientes.

Devuelve ÚNICAMENTE texto plano en español (sin markdown, sin JSON, sin viñetas con asteriscos)
con un análisis breve en máximo 4 frases:
- el patrón de gasto más relevante del período,
- cualquier riesgo visible (saldos de custodia bajos, acumulación de pendientes),
- una recomendación concreta y accionable para el dueño del negocio.`
)

// GeminiService adaptador que implementa LLMService llamando a la API REST de Google Gemini.
// Usa únicamente la librería estándar de Go (net/http) para no añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-1.5-flash".
// Si apiKey está vacío, las llamadas fallan con error y el caso de uso aplica su respaldo.
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 20 * time.Second, // timeout de red; el caller también pone WithTimeout
		},
	}
}

// ── Estructuras internas para la API de Gemini ────────────────────────────────

type geminiRequest struct {
	SystemInstruction *geminiContent  `json:"system_instruction,omitempty"`
	Contents          []geminiContent `json:"contents"`
	GenerationConfig  genConfig       `json:"generationConfig"`
}

type geminiContent struct {
	Parts []geminiPart `json:"parts"`
	Role  string       `json:"role,omitempty"`
}

type geminiPart struct {
	Text string `json:"text"`
}

type genConfig struct {
	Temperature     float32 `json:"temperature"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type geminiResponse struct {
	Candidates []struct {
		Content geminiContent `json:"content"`
	} `json:"candidates"`
	Error *struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// GenerateExpenseInsights llama a Gemini con el resumen de gasto del tenant y
// devuelve el análisis en texto plano.
func (s *GeminiService) GenerateExpenseInsights(ctx context.Context, summary string) (string, error) {
	if s.apiKey == "" {
		return "", fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPrompt}},
		},
		Contents: []geminiContent{
			{
				Role:  "user",
				Parts: []geminiPart{{Text: summary}},
			},
		},
		GenerationConfig: genConfig{
			Temperature:     0.4,
			MaxOutputTokens: 512,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return "", fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 64*1024))
	if err != nil {
		return "", fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return "", fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return "", fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return "", fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}

	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	return strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text), nil
}
