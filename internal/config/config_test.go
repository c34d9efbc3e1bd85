package config

import "testing"

func validConfig() Config {
	return Config{
		HTTP: HTTPConfig{Port: 8080},
		Embedding: EmbeddingConfig{
			APIKey: "test-key",
			Model:  "text-embedding-3-small",
		},
	}
}

func TestValidate_Valid(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_InvalidPort(t *testing.T) {
	cfg := validConfig()
	cfg.HTTP.Port = 0
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for invalid port")
	}
}

func TestValidate_MissingEmbeddingAPIKey(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.APIKey = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding api key")
	}
}

func TestValidate_MissingEmbeddingModel(t *testing.T) {
	cfg := validConfig()
	cfg.Embedding.Model = ""
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for missing embedding model")
	}
}

func TestValidate_PageSizeTooLarge(t *testing.T) {
	cfg := validConfig()
	cfg.News.PageSize = 101
	if err := cfg.Validate(); err == nil {
		t.Fatal("expected error for page size over 100")
	}
}

func TestApplyDefaults(t *testing.T) {
	cfg := validConfig()
	cfg.ApplyDefaults()

	if cfg.News.BaseURL != "https://newsapi.org/v2" {
		t.Errorf("news.base_url default = %q", cfg.News.BaseURL)
	}
	if cfg.News.Language != "en" {
		t.Errorf("news.language default = %q", cfg.News.Language)
	}
	if cfg.News.PageSize != 100 {
		t.Errorf("news.page_size default = %d", cfg.News.PageSize)
	}
	if cfg.News.TimeoutSec != 15 {
		t.Errorf("news.timeout_sec default = %d", cfg.News.TimeoutSec)
	}
	if cfg.Embedding.TimeoutSec != 30 {
		t.Errorf("embedding.timeout_sec default = %d", cfg.Embedding.TimeoutSec)
	}
	if cfg.HTTP.MaxUploadBytes != 10<<20 {
		t.Errorf("http.max_upload_bytes default = %d", cfg.HTTP.MaxUploadBytes)
	}
	if cfg.HTTP.ShutdownSec != 10 {
		t.Errorf("http.shutdown_timeout_sec default = %d", cfg.HTTP.ShutdownSec)
	}
}

func TestExpandEnvVars(t *testing.T) {
	t.Setenv("FEEDRANK_TEST_KEY", "from-env")

	in := []byte("api_key: ${FEEDRANK_TEST_KEY}\nbase_url: ${FEEDRANK_TEST_MISSING:-https://fallback}\n")
	out := string(expandEnvVars(in))

	want := "api_key: from-env\nbase_url: https://fallback\n"
	if out != want {
		t.Errorf("expandEnvVars:\ngot:  %q\nwant: %q", out, want)
	}
}
