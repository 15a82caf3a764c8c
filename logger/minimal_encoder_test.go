package logger

import (
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// stripANSI removes ANSI color codes from a string for testing
func stripANSI(str string) string {
	ansiRegex := regexp.MustCompile(`\x1b\[[0-9;]*m`)
	return ansiRegex.ReplaceAllString(str, "")
}

func encode(t *testing.T, enc zapcore.Encoder, ent zapcore.Entry, fields ...zapcore.Field) string {
	t.Helper()
	buf, err := enc.EncodeEntry(ent, fields)
	require.NoError(t, err)
	return stripANSI(buf.String())
}

// The minimal encoder must never silently discard a field.
func TestMinimalEncoderNeverDiscardsFields(t *testing.T) {
	entry := zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       time.Now(),
		LoggerName: "test",
		Message:    "Testing field preservation",
	}

	testFields := []struct {
		field    zapcore.Field
		mustFind string
	}{
		{zap.String("type", "com.example.Foo"), "type=com.example.Foo"},
		{zap.String("file", "com/example/Foo.java"), "file=com/example/Foo.java"},
		{zap.Bool("always_qualify", true), "always_qualify=true"},
		{zap.Float64("ratio", 0.8), "ratio=0.8"},
		{zap.Strings("imports", []string{"java.util.List", "java.util.Map"}), "imports=[java.util.List java.util.Map]"},
		{zap.String("random_field_xyz", "important_data"), "random_field_xyz=important_data"},
		{zap.Int("count", 999), "count=999"},
		{zap.String("field.with.dots", "test2"), "field.with.dots=test2"},
		{zap.Int32("int32_field", 42), "int32_field=42"},
		{zap.Int64("int64_field", 9999999), "int64_field=9999999"},
		{zap.Float32("float32_field", 3.14), "float32_field=3.14"},
		{zap.Bool("success", false), "success=false"},
		{zap.Error(nil), ""},
		{zap.String("error", "unused argument: $2"), "error=unused argument: $2"},
		{zap.Int64("duration_ms", 12), "12ms"},
	}

	var all []zapcore.Field
	for _, tf := range testFields {
		all = append(all, tf.field)
	}

	out := encode(t, newMinimalEncoder(), entry, all...)
	for _, tf := range testFields {
		if tf.mustFind != "" {
			assert.Contains(t, out, tf.mustFind, "field silently discarded")
		}
	}
}

func TestMinimalEncoderLayout(t *testing.T) {
	ts := time.Date(2024, 1, 2, 13, 4, 35, 0, time.UTC)

	out := encode(t, newMinimalEncoder(), zapcore.Entry{
		Level:      zapcore.InfoLevel,
		Time:       ts,
		LoggerName: "jpoet.writer",
		Message:    "Wrote file",
	}, zap.Int64("duration_ms", 4), zap.String("file", "Foo.java"), zap.Int("imports", 3))

	assert.Equal(t, "13:04:35  j.writer  Wrote file  file=Foo.java imports=3 4ms\n", out)
}

func TestMinimalEncoderLevels(t *testing.T) {
	enc := newMinimalEncoder()
	base := zapcore.Entry{Time: time.Now(), Message: "m"}

	base.Level = zapcore.InfoLevel
	assert.NotContains(t, encode(t, enc, base), "INFO")

	base.Level = zapcore.WarnLevel
	assert.Contains(t, encode(t, enc, base), "WARN")

	base.Level = zapcore.ErrorLevel
	assert.Contains(t, encode(t, enc, base), "ERROR")
}

func TestMinimalEncoderCloneKeepsContext(t *testing.T) {
	enc := newMinimalEncoder()
	enc.AddString("package", "com.example")
	enc.AddInt64("pass", 2)

	clone := enc.Clone()
	enc.AddBool("late", true)

	out := encode(t, clone, zapcore.Entry{Time: time.Now(), Message: "m"})
	assert.Contains(t, out, "package=com.example")
	assert.Contains(t, out, "pass=2")
	assert.NotContains(t, out, "late=true")
}

func TestMinimalEncoderExoticTypes(t *testing.T) {
	fields := []zapcore.Field{
		zap.Complex128("complex", complex(1.0, 2.0)),
		zap.Duration("duration", 5*time.Second),
		zap.Time("timestamp", time.Now()),
		zap.Uint64("uint64", 5000000000),
		zap.ByteString("bytes", []byte("hello world")),
		zap.Binary("binary", []byte{0x01, 0x02, 0x03}),
	}

	out := encode(t, newMinimalEncoder(), zapcore.Entry{Time: time.Now(), Message: "m"}, fields...)
	for _, key := range []string{"complex=", "duration=5s", "timestamp=", "uint64=5000000000", "bytes=hello world", "binary="} {
		assert.Contains(t, out, key)
	}
}

func TestAbbreviateName(t *testing.T) {
	assert.Equal(t, "j.writer", abbreviateName("jpoet.writer"))
	assert.Equal(t, "javagen", abbreviateName("javagen"))
	assert.Equal(t, ".x", abbreviateName(".x"))
}

func TestSetTheme(t *testing.T) {
	defer SetTheme("everforest")

	SetTheme("gruvbox")
	assert.Equal(t, "gruvbox", currentTheme)

	SetTheme("solarized")
	assert.Equal(t, "gruvbox", currentTheme)
	assert.True(t, strings.HasPrefix(colorComponent("x"), "\x1b["))
}

func TestMinimalEncoderPlain(t *testing.T) {
	plain = true
	defer func() { plain = false }()

	buf, err := newMinimalEncoder().EncodeEntry(zapcore.Entry{
		Level:   zapcore.WarnLevel,
		Time:    time.Now(),
		Message: "no colors",
	}, []zapcore.Field{zap.String("file", "Foo.java")})
	require.NoError(t, err)

	assert.NotContains(t, buf.String(), "\x1b[")
	assert.Contains(t, buf.String(), "WARN  no colors  file=Foo.java")
}
