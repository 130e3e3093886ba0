package llm

import (
	"testing"

	"google.golang.org/genai"

	"github.com/verdora/voicecart-server/domain/repositories"
)

func TestToGenaiRole(t *testing.T) {
	if got := toGenaiRole(repositories.AssistantRole); got != genai.RoleModel {
		t.Errorf("Expected assistant turns to map to the model role, got %q", got)
	}
	if got := toGenaiRole(repositories.UserRole); got != genai.RoleUser {
		t.Errorf("Expected user turns to map to the user role, got %q", got)
	}
	if got := toGenaiRole(repositories.SystemRole); got != genai.RoleUser {
		t.Errorf("Expected system turns to replay as the user role, got %q", got)
	}
}

func TestToGenaiRole_BuildsContent(t *testing.T) {
	content := genai.NewContentFromText("hello", toGenaiRole(repositories.AssistantRole))

	if content.Role != string(genai.RoleModel) {
		t.Errorf("Expected model role on content, got %q", content.Role)
	}
	if len(content.Parts) != 1 || content.Parts[0].Text != "hello" {
		t.Errorf("Expected single text part, got %+v", content.Parts)
	}
}
