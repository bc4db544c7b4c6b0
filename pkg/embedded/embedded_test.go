package embedded

import (
	"testing"
	"testing/fstest"
)

func TestReadFileBeforeInit(t *testing.T) {
	Init(nil)
	if _, err := ReadFile(DefaultGameplayConfigPath); err == nil {
		t.Error("expected error before Init")
	}
	if Exists(DefaultGameplayConfigPath) {
		t.Error("Exists should be false before Init")
	}
}

func TestReadFile(t *testing.T) {
	Init(fstest.MapFS{
		"data/arena.yaml": {Data: []byte("world:\n  gravity: -9.81\n")},
	})
	defer Init(nil)

	tests := []struct {
		name    string
		path    string
		wantErr bool
	}{
		{name: "标准路径", path: "data/arena.yaml"},
		{name: "带 ./ 前缀", path: "./data/arena.yaml"},
		{name: "未知前缀", path: "assets/arena.yaml", wantErr: true},
		{name: "文件不存在", path: "data/missing.yaml", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			data, err := ReadFile(tt.path)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ReadFile(%q) error = %v, wantErr %v", tt.path, err, tt.wantErr)
			}
			if !tt.wantErr && len(data) == 0 {
				t.Error("expected file content")
			}
			if Exists(tt.path) == tt.wantErr {
				t.Errorf("Exists(%q) = %v", tt.path, !tt.wantErr)
			}
		})
	}
}
