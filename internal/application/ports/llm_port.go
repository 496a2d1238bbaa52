package ports

import "context"

// LLMService define el puerto de salida hacia los servicios de inteligencia
// artificial. Cualquier adaptador (Gemini, OpenAI, Ollama, mock) debe
// implementar esta interfaz. Siguiendo el principio de inversión de
// dependencias (DIP), la capa de aplicación solo conoce este contrato, no la
// implementación concreta.
type LLMService interface {
	// GenerateExpenseInsights recibe un resumen en texto plano del gasto
	// reciente de la empresa y devuelve un análisis corto en español.
	// El contexto debe llevar un timeout para evitar bloqueos en llamadas externas.
	GenerateExpenseInsights(ctx context.Context, summary string) (string, error)
}
