package tts

import (
	"bytes"
	"context"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"go.uber.org/zap"
)

const googleEndpoint = "https://texttospeech.googleapis.com/v1/text:synthesize"

// GoogleClient synthesizes speech with Google Cloud Text-to-Speech.
// Results are cached on disk; files in audioDir override the API.
type GoogleClient struct {
	apiKey     string
	endpoint   string
	cacheDir   string
	audioDir   string
	httpClient *http.Client
	logger     *zap.Logger

	mu sync.Mutex
}

// NewGoogleClient creates a client and its cache directory
func NewGoogleClient(apiKey, cacheDir, audioDir string, logger *zap.Logger) (*GoogleClient, error) {
	if err := os.MkdirAll(cacheDir, 0o755); err != nil {
		return nil, fmt.Errorf("create tts cache dir: %w", err)
	}
	return &GoogleClient{
		apiKey:   apiKey,
		endpoint: googleEndpoint,
		cacheDir: cacheDir,
		audioDir: audioDir,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: logger,
	}, nil
}

func cacheKey(text, lang string) string {
	h := sha256.Sum256([]byte(lang + ":" + text))
	return hex.EncodeToString(h[:16])
}

// Synthesize returns MP3 audio for text, checking overrides, then the cache,
// then the API. Failures are not cached.
func (c *GoogleClient) Synthesize(ctx context.Context, text, lang string) ([]byte, error) {
	key := cacheKey(text, lang)

	if c.audioDir != "" {
		if data, err := os.ReadFile(filepath.Join(c.audioDir, key+".mp3")); err == nil {
			return data, nil
		}
	}

	cachePath := filepath.Join(c.cacheDir, key+".mp3")
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	// Another request may have filled the cache while we waited
	if data, err := os.ReadFile(cachePath); err == nil {
		return data, nil
	}

	if c.apiKey == "" {
		return nil, ErrUnavailable
	}

	data, err := c.call(ctx, text, lang)
	if err != nil {
		c.logger.Warn("TTS API request failed",
			zap.String("text", text),
			zap.String("lang", lang),
			zap.Error(err),
		)
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if err := os.WriteFile(cachePath, data, 0o644); err != nil {
		c.logger.Warn("Failed to cache TTS audio", zap.String("path", cachePath), zap.Error(err))
	}
	return data, nil
}

type synthesizeRequest struct {
	Input struct {
		Text string `json:"text"`
	} `json:"input"`
	Voice struct {
		LanguageCode string `json:"languageCode"`
		SSMLGender   string `json:"ssmlGender"`
	} `json:"voice"`
	AudioConfig struct {
		AudioEncoding string  `json:"audioEncoding"`
		SpeakingRate  float64 `json:"speakingRate"`
	} `json:"audioConfig"`
}

func (c *GoogleClient) call(ctx context.Context, text, lang string) ([]byte, error) {
	var reqBody synthesizeRequest
	reqBody.Input.Text = text
	reqBody.Voice.LanguageCode = lang
	reqBody.Voice.SSMLGender = "FEMALE"
	reqBody.AudioConfig.AudioEncoding = "MP3"
	reqBody.AudioConfig.SpeakingRate = 0.9

	jsonBody, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"?key="+c.apiKey, bytes.NewReader(jsonBody))
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("api error %d: %s", resp.StatusCode, string(body))
	}

	var result struct {
		AudioContent string `json:"audioContent"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return nil, fmt.Errorf("parse response: %w", err)
	}

	audio, err := base64.StdEncoding.DecodeString(result.AudioContent)
	if err != nil {
		return nil, fmt.Errorf("decode audio: %w", err)
	}
	return audio, nil
}
