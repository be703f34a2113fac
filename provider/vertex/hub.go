package vertex

import (
	"context"
	"fmt"
	"sync"

	aiplatform "cloud.google.com/go/aiplatform/apiv1"
	"cloud.google.com/go/aiplatform/apiv1/aiplatformpb"
	"google.golang.org/api/option"
	"google.golang.org/genai"
	"google.golang.org/protobuf/types/known/structpb"
)

// GenerativeModel is a reusable handle bound to one Gemini model.
type GenerativeModel interface {
	GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

// TextCompletionModel is a reusable handle bound to one PaLM text model.
type TextCompletionModel interface {
	Predict(ctx context.Context, text string, parameters *structpb.Value) (string, error)
}

// Hub caches model handles per model identifier, with one cache per API
// family. A handle is constructed once per (family, id) pair and shared
// by every adapter using the same Hub; the first adapter to reach a model
// supplies the connection its handle is built with. Handle construction
// issues no network request.
type Hub struct {
	mu             sync.Mutex
	generative     map[string]GenerativeModel
	textCompletion map[string]TextCompletionModel

	// Constructors are swappable so tests can inject fakes.
	newGenerative     func(ctx context.Context, conn Connection, modelID string) (GenerativeModel, error)
	newTextCompletion func(ctx context.Context, conn Connection, modelID string) (TextCompletionModel, error)
}

// NewHub creates an empty handle cache backed by the real Vertex AI SDKs.
func NewHub() *Hub {
	return &Hub{
		generative:        make(map[string]GenerativeModel),
		textCompletion:    make(map[string]TextCompletionModel),
		newGenerative:     newGenaiModel,
		newTextCompletion: newPredictionModel,
	}
}

// DefaultHub is the process-scoped handle cache used by adapters unless
// [WithHub] overrides it.
var DefaultHub = NewHub()

// Generative returns the cached generative handle for a model,
// constructing it on first use.
func (h *Hub) Generative(ctx context.Context, conn Connection, modelID string) (GenerativeModel, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m, ok := h.generative[modelID]; ok {
		return m, nil
	}
	m, err := h.newGenerative(ctx, conn, modelID)
	if err != nil {
		return nil, err
	}
	h.generative[modelID] = m
	return m, nil
}

// TextCompletion returns the cached text-completion handle for a model,
// constructing it on first use.
func (h *Hub) TextCompletion(ctx context.Context, conn Connection, modelID string) (TextCompletionModel, error) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if m, ok := h.textCompletion[modelID]; ok {
		return m, nil
	}
	m, err := h.newTextCompletion(ctx, conn, modelID)
	if err != nil {
		return nil, err
	}
	h.textCompletion[modelID] = m
	return m, nil
}

// genaiModel serves Gemini models through the GenAI SDK configured for
// the Vertex AI backend.
type genaiModel struct {
	client *genai.Client
	model  string
}

func newGenaiModel(ctx context.Context, conn Connection, modelID string) (GenerativeModel, error) {
	cfg := &genai.ClientConfig{
		Backend:  genai.BackendVertexAI,
		Project:  conn.Project,
		Location: conn.Location,
	}
	if conn.Credentials != nil {
		cfg.Credentials = conn.Credentials
	}
	client, err := genai.NewClient(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return &genaiModel{client: client, model: modelID}, nil
}

func (m *genaiModel) GenerateContent(ctx context.Context, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error) {
	return m.client.Models.GenerateContent(ctx, m.model, contents, config)
}

// predictionModel serves PaLM text models through the Vertex AI
// PredictionService against the publisher model endpoint.
type predictionModel struct {
	client   *aiplatform.PredictionClient
	endpoint string
}

func newPredictionModel(ctx context.Context, conn Connection, modelID string) (TextCompletionModel, error) {
	opts := []option.ClientOption{
		option.WithEndpoint(fmt.Sprintf("%s-aiplatform.googleapis.com:443", conn.Location)),
	}
	if conn.Credentials != nil {
		opts = append(opts, option.WithAuthCredentials(conn.Credentials))
	}
	client, err := aiplatform.NewPredictionClient(ctx, opts...)
	if err != nil {
		return nil, err
	}
	return &predictionModel{
		client:   client,
		endpoint: fmt.Sprintf("projects/%s/locations/%s/publishers/google/models/%s", conn.Project, conn.Location, modelID),
	}, nil
}

func (m *predictionModel) Predict(ctx context.Context, text string, parameters *structpb.Value) (string, error) {
	instance, err := structpb.NewStruct(map[string]any{"prompt": text})
	if err != nil {
		return "", err
	}
	resp, err := m.client.Predict(ctx, &aiplatformpb.PredictRequest{
		Endpoint:   m.endpoint,
		Instances:  []*structpb.Value{structpb.NewStructValue(instance)},
		Parameters: parameters,
	})
	if err != nil {
		return "", err
	}
	if len(resp.Predictions) == 0 {
		return "", fmt.Errorf("empty prediction response from %s", m.endpoint)
	}
	return resp.Predictions[0].GetStructValue().GetFields()["content"].GetStringValue(), nil
}
