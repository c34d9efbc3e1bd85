package archive

import (
	"errors"
	"reflect"
	"testing"

	"github.com/kailas-cloud/feedrank/internal/domain"
)

func TestExtractHashtags(t *testing.T) {
	raw := []byte(`{
		"Your Activity": {
			"Hashtag": {
				"HashtagList": [
					{"HashtagName": "technology"},
					{"HashtagName": "  coding  "},
					{"HashtagName": "ai"}
				]
			}
		}
	}`)

	names, err := ExtractHashtags(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []string{"technology", "coding", "ai"}
	if !reflect.DeepEqual(names, want) {
		t.Errorf("names = %v, want %v", names, want)
	}
}

func TestExtractHashtags_PreservesCasing(t *testing.T) {
	raw := []byte(`{"Your Activity": {"Hashtag": {"HashtagList": [{"HashtagName": "MachineLearning"}]}}}`)
	names, err := ExtractHashtags(raw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if names[0] != "MachineLearning" {
		t.Errorf("expected original casing preserved, got %q", names[0])
	}
}

func TestExtractHashtags_InvalidJSON(t *testing.T) {
	_, err := ExtractHashtags([]byte("not valid json"))
	if !errors.Is(err, domain.ErrInvalidArchive) {
		t.Errorf("expected ErrInvalidArchive, got %v", err)
	}
}

func TestExtractHashtags_EmptyList(t *testing.T) {
	raw := []byte(`{"Your Activity": {"Hashtag": {"HashtagList": []}}}`)
	_, err := ExtractHashtags(raw)
	if !errors.Is(err, domain.ErrNoHashtags) {
		t.Errorf("expected ErrNoHashtags, got %v", err)
	}
}

func TestExtractHashtags_MissingNesting(t *testing.T) {
	// Every level defaults to empty when absent.
	_, err := ExtractHashtags([]byte(`{}`))
	if !errors.Is(err, domain.ErrNoHashtags) {
		t.Errorf("expected ErrNoHashtags, got %v", err)
	}
}

func TestExtractHashtags_AllWhitespace(t *testing.T) {
	raw := []byte(`{"Your Activity": {"Hashtag": {"HashtagList": [
		{"HashtagName": ""},
		{"HashtagName": "   "}
	]}}}`)
	_, err := ExtractHashtags(raw)
	if !errors.Is(err, domain.ErrNoUsableHashtags) {
		t.Errorf("expected ErrNoUsableHashtags, got %v", err)
	}
}
