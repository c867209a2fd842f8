// Package ai contiene los adaptadores hacia servicios de inteligencia artificial.
package ai

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/hanquocpodcastne-create/PHAVI/internal/application/ports"
	"github.com/hanquocpodcastne-create/PHAVI/internal/domain/entity"
)

// Verificar en tiempo de compilación que GeminiService implementa ExtractionService.
var _ ports.ExtractionService = (*GeminiService)(nil)

const geminiBaseURL = "https://generativelanguage.googleapis.com/v1beta/models/%s:generateContent?key=%s"

// Reglas compartidas por los tres prompts. Usar responseMimeType=application/json
// más responseSchema obliga a Gemini a devolver JSON puro con la forma esperada,
// eliminando la necesidad de limpiar bloques de markdown.
const baseRules = `
REGLAS GENERALES IMPORTANTES:
1. **Fechas**: Busca la fecha del documento (suele venir DD/MM/YYYY) y CONVIÉRTELA de inmediato al formato ISO: **YYYY-MM-DD**. Ejemplo: "15/10/2025" -> "2025-10-15".
2. **Números**: Elimina los separadores de miles. "100.000" -> 100000. Coma decimal -> punto.
3. **Nombres de producto**: Toma el nombre completo con su presentación.`

const (
	promptInbound = `Eres un Experto en Procesamiento de Remitos de ENTRADA a bodega.
Tarea: extrae únicamente la información de mercadería que INGRESA a la bodega.
` + baseRules + `

REGLAS ESPECÍFICAS PARA ENTRADAS:
- OBLIGATORIO asignar el campo 'type' como "INBOUND".
- 'supplierName': es el nombre del proveedor o de quien entrega la mercadería.
- Omite renglones de flete, impuestos y descuentos; solo la lista de mercadería física que entra.`

	promptOutbound = `Eres un Experto en Procesamiento de Remitos de SALIDA de bodega.
Tarea: extrae únicamente la información de mercadería que SALE de la bodega.
` + baseRules + `

REGLAS ESPECÍFICAS PARA SALIDAS:
- OBLIGATORIO asignar el campo 'type' como "OUTBOUND".
- 'supplierName': es el nombre del cliente o de la unidad que recibe.
- Solo mercadería física, no servicios.`

	promptGeneral = `Eres un Analista de Documentos de Bodega de propósito general.
Tarea: lee el documento, decide por tu cuenta si es un remito de entrada o de salida y extrae todo el detalle.
` + baseRules + `

REGLAS ESPECÍFICAS:
- Lee el título o el contexto para decidir 'type': entrada/compra -> "INBOUND", salida/venta -> "OUTBOUND".
- Extrae TODOS los renglones de mercadería con cantidad.`
)

// GeminiService adaptador que implementa ExtractionService llamando a la API REST
// de Google Gemini. Usa únicamente la librería estándar de Go (net/http) para no
// añadir dependencias externas.
type GeminiService struct {
	apiKey     string
	model      string
	httpClient *http.Client
}

// NewGeminiService construye el adaptador. model suele ser "gemini-2.5-flash".
func NewGeminiService(apiKey, model string) *GeminiService {
	return &GeminiService{
		apiKey: apiKey,
		model:  model,
		httpClient: &http.Client{
			Timeout: 45 * time.Second, // timeout de red; el caller también pone WithTimeout
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
	Text       string      `json:"text,omitempty"`
	InlineData *inlineData `json:"inlineData,omitempty"`
}

type inlineData struct {
	MIMEType string `json:"mimeType"`
	Data     string `json:"data"` // base64
}

type genConfig struct {
	ResponseMIMEType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema,omitempty"`
	Temperature      float32        `json:"temperature"`
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

// responseSchema describe la forma exacta del documento extraído, con el mismo
// contrato JSON que entity.ExtractedDocument.
func responseSchema() map[string]any {
	str := func(desc string) map[string]any {
		return map[string]any{"type": "STRING", "description": desc}
	}
	num := func(desc string) map[string]any {
		return map[string]any{"type": "NUMBER", "description": desc}
	}
	return map[string]any{
		"type": "OBJECT",
		"properties": map[string]any{
			"type":          str(`Tipo de transacción, "INBOUND" (entrada) u "OUTBOUND" (salida).`),
			"documentId":    str("Número del remito o factura."),
			"date":          str("Fecha del documento, formato YYYY-MM-DD."),
			"warehouseName": str("Nombre de la bodega."),
			"supplierName":  str("Nombre de la contraparte (proveedor o cliente)."),
			"items": map[string]any{
				"type":        "ARRAY",
				"description": "Detalle de mercadería.",
				"items": map[string]any{
					"type": "OBJECT",
					"properties": map[string]any{
						"productCode": str("Código del artículo."),
						"productName": str("Nombre de la mercadería."),
						"quantity":    num("Cantidad real."),
						"unit":        str("Unidad de medida."),
						"costPrice":   num("Precio unitario (solo el número, sin separadores)."),
						"lotNumber":   str("Número de lote (si existe)."),
						"expiryDate":  str("Fecha de vencimiento, formato YYYY-MM-DD."),
					},
					"required": []string{"productName", "quantity"},
				},
			},
		},
		"required": []string{"type", "items"},
	}
}

func systemPromptFor(mode string) string {
	switch mode {
	case ports.ModeInbound:
		return promptInbound
	case ports.ModeOutbound:
		return promptOutbound
	default:
		return promptGeneral
	}
}

// ── Implementación del puerto ─────────────────────────────────────────────────

// ExtractDocument envía el archivo como inlineData base64 junto al prompt del modo
// y parsea el documento candidato que devuelve el modelo.
func (s *GeminiService) ExtractDocument(ctx context.Context, data []byte, mimeType, mode string) (*entity.ExtractedDocument, error) {
	if s.apiKey == "" {
		return nil, fmt.Errorf("AI: GEMINI_API_KEY no configurado")
	}

	payload := geminiRequest{
		SystemInstruction: &geminiContent{
			Parts: []geminiPart{{Text: systemPromptFor(mode)}},
		},
		Contents: []geminiContent{
			{
				Role: "user",
				Parts: []geminiPart{
					{InlineData: &inlineData{MIMEType: mimeType, Data: base64.StdEncoding.EncodeToString(data)}},
					{Text: "Analiza este documento según las instrucciones del sistema."},
				},
			},
		},
		GenerationConfig: genConfig{
			ResponseMIMEType: "application/json",
			ResponseSchema:   responseSchema(),
			Temperature:      0.1, // baja temperatura para extracciones más deterministas
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("AI: serializar request: %w", err)
	}

	url := fmt.Sprintf(geminiBaseURL, s.model, s.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("AI: crear HTTP request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("AI: timeout o cancelación: %w", ctx.Err())
		}
		return nil, fmt.Errorf("AI: llamada HTTP fallida: %w", err)
	}
	defer resp.Body.Close()

	rawBody, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, fmt.Errorf("AI: leer respuesta: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		// Intentar extraer el mensaje de error de Gemini
		var errResp geminiResponse
		if jsonErr := json.Unmarshal(rawBody, &errResp); jsonErr == nil && errResp.Error != nil {
			return nil, fmt.Errorf("AI: Gemini error %d: %s", errResp.Error.Code, errResp.Error.Message)
		}
		return nil, fmt.Errorf("AI: Gemini HTTP %d", resp.StatusCode)
	}

	var gemResp geminiResponse
	if err := json.Unmarshal(rawBody, &gemResp); err != nil {
		return nil, fmt.Errorf("AI: deserializar respuesta Gemini: %w", err)
	}
	if len(gemResp.Candidates) == 0 || len(gemResp.Candidates[0].Content.Parts) == 0 {
		return nil, fmt.Errorf("AI: Gemini devolvió respuesta vacía")
	}

	rawJSON := strings.TrimSpace(gemResp.Candidates[0].Content.Parts[0].Text)
	var doc entity.ExtractedDocument
	if err := json.Unmarshal([]byte(rawJSON), &doc); err != nil {
		return nil, fmt.Errorf("AI: respuesta del modelo no es JSON válido: %w (respuesta: %s)", err, rawJSON)
	}
	return &doc, nil
}
