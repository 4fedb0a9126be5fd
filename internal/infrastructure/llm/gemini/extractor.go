package gemini

import (
	"bytes"
	"context"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"image"
	"image/png"
	"strings"

	openai "github.com/sashabaranov/go-openai"
	"golang.org/x/time/rate"

	"github.com/ekaraca/docsorter/internal/core/domain"
	"github.com/ekaraca/docsorter/internal/infrastructure/resilience"
)

// Extractor reads structured cheque fields off an image through Gemini's
// OpenAI-compatible chat endpoint. Calls are rate limited to stay inside
// the free-tier quota and retried through the shared executor.
type Extractor struct {
	client  *openai.Client
	model   string
	limiter *rate.Limiter
	exec    *resilience.Executor
}

type Config struct {
	BaseURL string
	APIKey  string
	Model   string
	RPS     float64
	Burst   int
}

func New(cfg Config, exec *resilience.Executor) *Extractor {
	clientCfg := openai.DefaultConfig(cfg.APIKey)
	if cfg.BaseURL != "" {
		clientCfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")
	}
	if cfg.Model == "" {
		cfg.Model = "gemini-2.0-flash"
	}
	if cfg.RPS <= 0 {
		cfg.RPS = 0.25
	}
	if cfg.Burst <= 0 {
		cfg.Burst = 1
	}
	return &Extractor{
		client:  openai.NewClientWithConfig(clientCfg),
		model:   cfg.Model,
		limiter: rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
		exec:    exec,
	}
}

func (e *Extractor) ExtractFields(ctx context.Context, img image.Image) (domain.ChequeFields, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return domain.ChequeFields{}, fmt.Errorf("encode cheque image: %w", err)
	}
	dataURL := fmt.Sprintf("data:image/png;base64,%s", base64.StdEncoding.EncodeToString(buf.Bytes()))

	if err := e.limiter.Wait(ctx); err != nil {
		return domain.ChequeFields{}, err
	}

	var content string
	call := func(ctx context.Context) error {
		resp, err := e.client.CreateChatCompletion(ctx, openai.ChatCompletionRequest{
			Model: e.model,
			Messages: []openai.ChatCompletionMessage{
				{
					Role: openai.ChatMessageRoleUser,
					MultiContent: []openai.ChatMessagePart{
						{Type: openai.ChatMessagePartTypeText, Text: extractionPrompt},
						{
							Type:     openai.ChatMessagePartTypeImageURL,
							ImageURL: &openai.ChatMessageImageURL{URL: dataURL},
						},
					},
				},
			},
		})
		if err != nil {
			return domain.WrapError(domain.ErrTemporary, "gemini chat completion", err)
		}
		if len(resp.Choices) == 0 {
			return domain.WrapError(domain.ErrTemporary, "gemini chat completion", fmt.Errorf("empty choices"))
		}
		content = resp.Choices[0].Message.Content
		return nil
	}

	var err error
	if e.exec != nil {
		err = e.exec.Execute(ctx, "gemini_extract_cheque", call, nil)
	} else {
		err = call(ctx)
	}
	if err != nil {
		return domain.ChequeFields{}, err
	}

	fields, err := parseFields(content)
	if err != nil {
		return domain.ChequeFields{}, fmt.Errorf("parse gemini response: %w", err)
	}
	return fields, nil
}

// parseFields tolerates the markdown fences Gemini likes to wrap JSON in.
func parseFields(raw string) (domain.ChequeFields, error) {
	cleaned := strings.TrimSpace(raw)
	cleaned = strings.TrimPrefix(cleaned, "```json")
	cleaned = strings.TrimPrefix(cleaned, "```")
	cleaned = strings.TrimSuffix(cleaned, "```")
	cleaned = strings.TrimSpace(cleaned)

	var payload struct {
		IBAN             *string         `json:"iban"`
		CheckNumber      json.RawMessage `json:"checkNumber"`
		BranchCode       json.RawMessage `json:"branchCode"`
		AccountNumber    json.RawMessage `json:"accountNumber"`
		CustomerIDNumber json.RawMessage `json:"customerIdNumber"`
		BankCode         json.RawMessage `json:"bankCode"`
		MICRCode         *string         `json:"micrCode"`
		CheckAmount      json.RawMessage `json:"checkAmount"`
	}
	if err := json.Unmarshal([]byte(cleaned), &payload); err != nil {
		return domain.ChequeFields{}, err
	}

	return domain.ChequeFields{
		IBAN:             payload.IBAN,
		CheckNumber:      flexString(payload.CheckNumber),
		BranchCode:       flexString(payload.BranchCode),
		AccountNumber:    flexString(payload.AccountNumber),
		CustomerIDNumber: flexString(payload.CustomerIDNumber),
		BankCode:         flexString(payload.BankCode),
		MICRCode:         payload.MICRCode,
		CheckAmount:      flexString(payload.CheckAmount),
	}, nil
}

// flexString accepts both JSON strings and bare numbers; the model is
// inconsistent about quoting numeric fields.
func flexString(raw json.RawMessage) *string {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return &s
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		v := n.String()
		return &v
	}
	return nil
}

const extractionPrompt = `Bu görüntüdeki Türk çeki/bankacılık belgesinden aşağıdaki bilgileri çıkar ve JSON formatında döndür.
Eğer bir bilgi görüntüde yoksa veya okunamazsa, o alan için null değeri kullan.

Çıkaracağın bilgiler:
- iban: IBAN numarası (TR ile başlayan 26 haneli kod)
- checkNumber: Çek numarası
- branchCode: Şube kodu
- accountNumber: Hesap numarası
- customerIdNumber: TC Kimlik numarası (11 haneli) veya VKN (10 haneli)
- bankCode: Banka kodu
- micrCode: MICR kodu (çekin altındaki manyetik kod)
- checkAmount: Çek tutarı (sadece sayısal değer, para birimi olmadan)

Lütfen sadece JSON formatında yanıt ver, başka açıklama ekleme:

{
    "iban": null,
    "checkNumber": null,
    "branchCode": null,
    "accountNumber": null,
    "customerIdNumber": null,
    "bankCode": null,
    "micrCode": null,
    "checkAmount": null
}`
