package service

import (
	"encoding/json"
	"log/slog"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/c360studio/nluentities/config"
	"github.com/c360studio/nluentities/ontology"
	"github.com/c360studio/nluentities/parser"
)

func newTestService(t *testing.T) *Service {
	t.Helper()
	svc, err := New(config.DefaultConfig(),
		WithLogger(slog.New(slog.DiscardHandler)),
		WithParser(parser.New(parser.WithLogger(slog.New(slog.DiscardHandler)))))
	require.NoError(t, err)
	return svc
}

func handle(t *testing.T, svc *Service, req ParseRequest) ParseResponse {
	t.Helper()
	data, err := json.Marshal(req)
	require.NoError(t, err)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(svc.Handle(data), &resp))
	return resp
}

func TestNew_InvalidConfig(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.NATS.Subject = ""

	_, err := New(cfg)
	require.Error(t, err)
}

func TestHandle_Extraction(t *testing.T) {
	svc := newTestService(t)

	resp := handle(t, svc, ParseRequest{
		Text:     "twenty percent",
		Language: "en",
		EntityKinds: []ontology.BuiltinEntityKind{
			ontology.Percentage,
		},
	})

	assert.Empty(t, resp.Error)
	assert.Empty(t, resp.ErrorCode)
	require.Len(t, resp.Entities, 1)
	assert.Equal(t, "twenty percent", resp.Entities[0].Value)
	assert.Equal(t, ontology.Percentage, resp.Entities[0].EntityKind)
	assert.Equal(t, ontology.PercentageValue{Value: 20}, resp.Entities[0].Entity)

	_, err := uuid.Parse(resp.RequestID)
	assert.NoError(t, err, "request id must be a UUID")
}

func TestHandle_MalformedRequest(t *testing.T) {
	svc := newTestService(t)

	var resp ParseResponse
	require.NoError(t, json.Unmarshal(svc.Handle([]byte("{not json")), &resp))

	assert.Equal(t, ErrCodeBadRequest, resp.ErrorCode)
	assert.NotEmpty(t, resp.Error)
	assert.Empty(t, resp.Entities)
}

func TestHandle_UnknownKindIdentifier(t *testing.T) {
	svc := newTestService(t)

	raw := []byte(`{"text":"x","language":"en","entity_kinds":["snips/bogus"]}`)
	var resp ParseResponse
	require.NoError(t, json.Unmarshal(svc.Handle(raw), &resp))

	assert.Equal(t, ErrCodeBadRequest, resp.ErrorCode)
}

func TestHandle_UnsupportedLanguage(t *testing.T) {
	svc := newTestService(t)

	resp := handle(t, svc, ParseRequest{Text: "hello", Language: "xx"})

	assert.Equal(t, ErrCodeUnsupportedLanguage, resp.ErrorCode)
	assert.NotEmpty(t, resp.Error)
}

func TestHandle_EmptyKindsMeansAll(t *testing.T) {
	svc := newTestService(t)

	resp := handle(t, svc, ParseRequest{
		Text:     "it takes 3 months",
		Language: "en",
	})

	assert.Empty(t, resp.ErrorCode)
	kinds := map[ontology.BuiltinEntityKind]bool{}
	for _, e := range resp.Entities {
		kinds[e.EntityKind] = true
	}
	assert.True(t, kinds[ontology.Number])
	assert.True(t, kinds[ontology.Duration])
}

func TestHandle_WireFormat(t *testing.T) {
	svc := newTestService(t)

	raw := svc.Handle([]byte(`{"text":"50%","language":"en","entity_kinds":["snips/percentage"]}`))

	var envelope struct {
		Entities []map[string]json.RawMessage `json:"entities"`
	}
	require.NoError(t, json.Unmarshal(raw, &envelope))
	require.Len(t, envelope.Entities, 1)

	var kind string
	require.NoError(t, json.Unmarshal(envelope.Entities[0]["entity_kind"], &kind))
	assert.Equal(t, "snips/percentage", kind)

	var value struct {
		Kind string `json:"kind"`
	}
	require.NoError(t, json.Unmarshal(envelope.Entities[0]["entity"], &value))
	assert.Equal(t, "Percentage", value.Kind)
}
