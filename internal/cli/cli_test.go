package cli_test

import (
	"bytes"
	"context"
	"encoding/json"
	"path/filepath"
	"strings"
	"testing"

	"github.com/saulo-duarte/memento/internal/cli"
	"github.com/saulo-duarte/memento/internal/store"
)

func setupEnv(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Setenv("MEMENTO_ENV", "production")
	t.Setenv("MEMENTO_STORAGE_DRIVER", "file")
	t.Setenv("MEMENTO_STORAGE_DIR", dir)
	t.Setenv("MEMENTO_REPLY_DELAY", "1ms")
	t.Setenv("MEMENTO_TRANSCRIPTION_DELAY", "1ms")
	t.Setenv("MEMENTO_LOG_LEVEL", "error")
	t.Setenv("MEMENTO_CRYPTO_KEY", "")
	return filepath.Join(dir, "config.yaml")
}

func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	cmd := cli.NewRootCmd()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)
	cmd.SetArgs(append([]string{"--config", configPath}, args...))
	err := cmd.ExecuteContext(context.Background())
	return out.String(), err
}

func TestProjectCommands(t *testing.T) {
	cfg := setupEnv(t)

	out, err := run(t, cfg, "project", "create", "Biologia Celular")
	if err != nil {
		t.Fatalf("create falhou: %v", err)
	}
	if !strings.Contains(out, "Biologia Celular") {
		t.Errorf("saída inesperada: %s", out)
	}
	if _, err := run(t, cfg, "project", "create", "Química"); err != nil {
		t.Fatalf("create falhou: %v", err)
	}

	out, err = run(t, cfg, "project", "list", "-q", "bio")
	if err != nil {
		t.Fatalf("list falhou: %v", err)
	}
	if !strings.Contains(out, "Biologia Celular") || strings.Contains(out, "Química") {
		t.Errorf("filtro incorreto:\n%s", out)
	}

	out, err = run(t, cfg, "export")
	if err != nil {
		t.Fatalf("export falhou: %v", err)
	}
	var st store.State
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatalf("export não é JSON válido: %v\n%s", err, out)
	}
	if len(st.Projects) != 2 {
		t.Fatalf("esperado 2 projetos persistidos, obtido %d", len(st.Projects))
	}
	if st.CurrentProjectID != st.Projects[1].ID {
		t.Errorf("último projeto criado deveria ser o atual")
	}

	id := st.Projects[0].ID
	if _, err := run(t, cfg, "project", "delete", id); err == nil {
		t.Error("delete sem --yes deveria falhar")
	}
	if _, err := run(t, cfg, "project", "delete", id, "--yes"); err != nil {
		t.Fatalf("delete falhou: %v", err)
	}
	out, _ = run(t, cfg, "project", "list")
	if strings.Contains(out, "Biologia Celular") {
		t.Errorf("projeto deveria ter sido removido:\n%s", out)
	}
}

func TestChatCommands(t *testing.T) {
	cfg := setupEnv(t)

	if _, err := run(t, cfg, "project", "create", "Fotossíntese"); err != nil {
		t.Fatalf("create falhou: %v", err)
	}

	out, err := run(t, cfg, "chat", "send", "O", "que", "é", "clorofila?")
	if err != nil {
		t.Fatalf("send falhou: %v", err)
	}
	if strings.TrimSpace(out) == "" {
		t.Error("deveria imprimir a resposta do assistente")
	}

	out, _ = run(t, cfg, "export")
	var st store.State
	if err := json.Unmarshal([]byte(out), &st); err != nil {
		t.Fatal(err)
	}
	if len(st.ChatMessages) != 2 || st.ChatMessages[0].ProjectID != st.CurrentProjectID {
		t.Fatalf("conversa não persistida corretamente: %+v", st.ChatMessages)
	}

	if _, err := run(t, cfg, "chat", "clear"); err != nil {
		t.Fatalf("clear falhou: %v", err)
	}
	out, _ = run(t, cfg, "export")
	st = store.State{}
	json.Unmarshal([]byte(out), &st)
	if len(st.ChatMessages) != 0 {
		t.Errorf("chat deveria estar vazio, obtido %d mensagens", len(st.ChatMessages))
	}
}
