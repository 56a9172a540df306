package gemini

import "testing"

func TestExtractJSON_Plain(t *testing.T) {
	in := `{"title": "ご提案"}`
	if got := extractJSON(in); got != in {
		t.Errorf("extractJSON = %q, want unchanged", got)
	}
}

func TestExtractJSON_CodeFence(t *testing.T) {
	in := "```json\n{\"title\": \"ご提案\"}\n```"
	want := `{"title": "ご提案"}`
	if got := extractJSON(in); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSON_BareFence(t *testing.T) {
	in := "```\n[1, 2, 3]\n```"
	want := "[1, 2, 3]"
	if got := extractJSON(in); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSON_SurroundingProse(t *testing.T) {
	in := "以下が結果です。\n{\"assets\": []}\nご確認ください。"
	want := `{"assets": []}`
	if got := extractJSON(in); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSON_Array(t *testing.T) {
	in := "Here you go: [{\"name\": \"a\"}] done"
	want := `[{"name": "a"}]`
	if got := extractJSON(in); got != want {
		t.Errorf("extractJSON = %q, want %q", got, want)
	}
}

func TestExtractJSON_NoJSONReturnsInput(t *testing.T) {
	in := "応答を生成できませんでした"
	if got := extractJSON(in); got != in {
		t.Errorf("extractJSON = %q, want input unchanged", got)
	}
}

func TestDocumentText_NonPDFPassthrough(t *testing.T) {
	text, err := documentText([]byte("銘柄,金額\nトヨタ,500000"), "text/csv")
	if err != nil {
		t.Fatalf("documentText returned error: %v", err)
	}
	if text != "銘柄,金額\nトヨタ,500000" {
		t.Errorf("text = %q, want passthrough", text)
	}
}

func TestExtractPDFText_InvalidData(t *testing.T) {
	if _, err := extractPDFText([]byte("not a pdf")); err == nil {
		t.Error("expected error for invalid PDF bytes")
	}
}
