package logger

import "go.uber.org/zap"

// Campos estándar HTTP.

func RequestID(v string) zap.Field { return zap.String("request_id", v) }
func Method(v string) zap.Field    { return zap.String("method", v) }
func Path(v string) zap.Field      { return zap.String("path", v) }
func Status(v int) zap.Field       { return zap.Int("status", v) }
func Bytes(v int) zap.Field        { return zap.Int("bytes", v) }
func DurationMs(v int64) zap.Field { return zap.Int64("duration_ms", v) }
func ClientIP(v string) zap.Field  { return zap.String("client_ip", v) }

// Campos de negocio.

func UserID(v string) zap.Field   { return zap.String("user_id", v) }
func RecordID(v string) zap.Field { return zap.String("record_id", v) }
func Username(v string) zap.Field { return zap.String("username", v) }

// Campos de sistema.

func Component(v string) zap.Field { return zap.String("component", v) }
func Op(v string) zap.Field        { return zap.String("op", v) }
func Layer(v string) zap.Field     { return zap.String("layer", v) }
func Err(err error) zap.Field      { return zap.Error(err) }
func Count(v int) zap.Field        { return zap.Int("count", v) }

// Genéricos.

func String(key, v string) zap.Field  { return zap.String(key, v) }
func Any(key string, v any) zap.Field { return zap.Any(key, v) }
