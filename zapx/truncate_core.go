package zapx

import (
	"go.uber.org/zap/zapcore"
)

const ellipsis = "..."

// TruncateCore shortens string fields with one of the configured keys when
// they are longer than limit bytes. The heap dumps logged by heap.MinHeap grow
// with the capacity, so commands wrap their core with it.
type TruncateCore struct {
	zapcore.Core
	limit int
	keys  map[string]struct{}
}

func NewTruncateCore(core zapcore.Core, limit int, keys ...string) *TruncateCore {
	set := make(map[string]struct{}, len(keys))
	for _, k := range keys {
		set[k] = struct{}{}
	}
	return &TruncateCore{
		Core:  core,
		limit: limit,
		keys:  set,
	}
}

func (z *TruncateCore) With(fields []zapcore.Field) zapcore.Core {
	return &TruncateCore{
		Core:  z.Core.With(z.truncate(fields)),
		limit: z.limit,
		keys:  z.keys,
	}
}

func (z *TruncateCore) Write(en zapcore.Entry, fields []zapcore.Field) error {
	return z.Core.Write(en, z.truncate(fields))
}

func (z *TruncateCore) Check(ent zapcore.Entry, ce *zapcore.CheckedEntry) *zapcore.CheckedEntry {
	if z.Enabled(ent.Level) {
		return ce.AddCore(ent, z)
	}
	return ce
}

func (z *TruncateCore) truncate(fields []zapcore.Field) []zapcore.Field {
	for i, fd := range fields {
		if fd.Type != zapcore.StringType || len(fd.String) <= z.limit {
			continue
		}
		if _, ok := z.keys[fd.Key]; !ok {
			continue
		}
		fields[i].String = fd.String[:z.limit] + ellipsis
	}
	return fields
}
