package logger

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/buffer"
	"go.uber.org/zap/zapcore"
)

const (
	colorReset = "\x1b[0m"
	colorBold  = "\x1b[1m"
)

// palette is one console color scheme
type palette struct {
	fg        string
	time      string
	component []string
	path      string
	number    string
	warn      string
	warnBg    string
	err       string
	errBg     string
}

var themes = map[string]palette{
	"everforest": {
		fg:        "\x1b[38;5;223m", // Soft beige (#d3c6aa)
		time:      "\x1b[38;5;107m", // Mid green (#83c092)
		component: []string{"\x1b[38;5;108m", "\x1b[38;5;65m", "\x1b[38;5;208m"},
		path:      "\x1b[38;5;109m", // Blue-green (#7fbbb3)
		number:    "\x1b[38;5;108m", // Bright green (#a7c080)
		warn:      "\x1b[38;5;179m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;52m",
	},
	"gruvbox": {
		fg:        "\x1b[38;5;223m", // Soft cream (#ebdbb2)
		time:      "\x1b[38;5;108m", // Muted cyan-green (#8ec07c)
		component: []string{"\x1b[38;5;208m", "\x1b[38;5;214m"},
		path:      "\x1b[38;5;109m", // Soft blue (#83a598)
		number:    "\x1b[38;5;175m", // Muted purple (#d3869b)
		warn:      "\x1b[38;5;214m",
		warnBg:    "\x1b[48;5;58m",
		err:       "\x1b[38;5;167m",
		errBg:     "\x1b[48;5;88m",
	},
}

// Current active theme (set by logger.Initialize from the environment)
var currentTheme = "everforest"

// plain disables ANSI colors (stderr is not a terminal, or NO_COLOR is set)
var plain bool

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*m`)

// SetTheme configures the color scheme for log output. Unknown names are ignored.
func SetTheme(theme string) {
	if _, ok := themes[theme]; ok {
		currentTheme = theme
	}
}

func colors() palette {
	return themes[currentTheme]
}

func colorComponent(name string) string {
	// Hash for consistent color per component
	hash := 0
	for _, c := range name {
		hash += int(c)
	}
	choices := colors().component
	return choices[hash%len(choices)]
}

// minimalEncoder implements a calm, compact console encoder with theme support
// Format: "13:04:35  j.writer  Wrote file  file=com/example/Foo.java imports=3  4ms"
type minimalEncoder struct {
	zapcore.Encoder // Embed a base encoder for With() fields
	context         []zapcore.Field
}

func newMinimalEncoder() *minimalEncoder {
	return &minimalEncoder{
		Encoder: zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()),
	}
}

func (enc *minimalEncoder) Clone() zapcore.Encoder {
	ctx := make([]zapcore.Field, len(enc.context))
	copy(ctx, enc.context)
	return &minimalEncoder{
		Encoder: enc.Encoder.Clone(),
		context: ctx,
	}
}

// AddString and friends are captured so that With() fields are printed too.
func (enc *minimalEncoder) AddString(key, value string) {
	enc.context = append(enc.context, zap.String(key, value))
}

func (enc *minimalEncoder) AddInt64(key string, value int64) {
	enc.context = append(enc.context, zap.Int64(key, value))
}

func (enc *minimalEncoder) AddBool(key string, value bool) {
	enc.context = append(enc.context, zap.Bool(key, value))
}

func (enc *minimalEncoder) EncodeEntry(ent zapcore.Entry, fields []zapcore.Field) (*buffer.Buffer, error) {
	final := buffer.NewPool().Get()
	c := colors()

	final.AppendString(c.time)
	final.AppendString(ent.Time.Format("15:04:05"))
	final.AppendString(colorReset)

	// Level: only show for WARN/ERROR and above
	if lvl := levelColorString(ent.Level); lvl != "" {
		final.AppendString("  ")
		final.AppendString(lvl)
	}

	if ent.LoggerName != "" {
		final.AppendString("  ")
		final.AppendString(colorComponent(ent.LoggerName))
		final.AppendString(abbreviateName(ent.LoggerName))
		final.AppendString(colorReset)
	}

	final.AppendString("  ")
	final.AppendString(c.fg)
	final.AppendString(ent.Message)
	final.AppendString(colorReset)

	all := make([]zapcore.Field, 0, len(enc.context)+len(fields))
	all = append(all, enc.context...)
	all = append(all, fields...)
	if rendered := renderFields(all); rendered != "" {
		final.AppendString("  ")
		final.AppendString(rendered)
	}

	final.AppendString("\n")

	if plain {
		stripped := ansiPattern.ReplaceAllString(final.String(), "")
		final.Reset()
		final.AppendString(stripped)
	}
	return final, nil
}

// levelColorString returns bold + colored + background for WARN/ERROR
func levelColorString(level zapcore.Level) string {
	c := colors()
	switch level {
	case zapcore.WarnLevel:
		return colorBold + c.warnBg + c.warn + "WARN" + colorReset
	case zapcore.ErrorLevel:
		return colorBold + c.errBg + c.err + "ERROR" + colorReset
	case zapcore.DPanicLevel, zapcore.PanicLevel, zapcore.FatalLevel:
		return colorBold + c.errBg + c.err + level.CapitalString() + colorReset
	default:
		return ""
	}
}

// abbreviateName shortens component names: jpoet.writer -> j.writer
func abbreviateName(name string) string {
	parts := strings.Split(name, ".")
	if len(parts) > 1 && parts[0] != "" {
		return string(parts[0][0]) + "." + strings.Join(parts[1:], ".")
	}
	return name
}

// renderFields prints every field as key=value. duration_ms is appended last
// as a bare "Nms" suffix.
func renderFields(fields []zapcore.Field) string {
	c := colors()
	var parts []string
	var duration string

	for _, field := range fields {
		if field.Type == zapcore.SkipType {
			continue
		}
		val, ok := fieldValue(field)
		if !ok {
			continue
		}
		switch field.Key {
		case FieldDurationMS:
			duration = c.number + val + colorReset + "ms"
		case FieldFile, FieldPackage, FieldType:
			parts = append(parts, field.Key+"="+c.path+val+colorReset)
		default:
			parts = append(parts, field.Key+"="+val)
		}
	}

	if duration != "" {
		parts = append(parts, duration)
	}
	return strings.Join(parts, " ")
}

// fieldValue renders a single zap field's value through a map encoder so
// every field type zap supports is covered.
func fieldValue(field zapcore.Field) (string, bool) {
	m := zapcore.NewMapObjectEncoder()
	field.AddTo(m)
	v, ok := m.Fields[field.Key]
	if !ok {
		return "", false
	}
	switch tv := v.(type) {
	case string:
		return tv, true
	case []interface{}:
		items := make([]string, len(tv))
		for i, item := range tv {
			items[i] = fmt.Sprint(item)
		}
		return "[" + strings.Join(items, " ") + "]", true
	case map[string]interface{}:
		keys := make([]string, 0, len(tv))
		for k := range tv {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		items := make([]string, len(keys))
		for i, k := range keys {
			items[i] = fmt.Sprintf("%s:%v", k, tv[k])
		}
		return "{" + strings.Join(items, ",") + "}", true
	default:
		return fmt.Sprint(tv), true
	}
}
