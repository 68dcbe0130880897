package config

import (
	"log/slog"
	"time"
)

const (
	IS_PROD        = false
	LOG_LEVEL_PROD = slog.LevelInfo
	TRACE_ID_KEY   = "traceId"

	NoAuthBypass = true //set false once clients send bearer tokens
	AuthToken    = ""

	RATE_LIMIT_PER_SECOND       = 2
	BURST_RATE_LIMIT_PER_SECOND = 5

	//rendered slide geometry - constant across a whole deck so the viewer
	//can apply uniform scaling
	CanvasWidth  = 1920
	CanvasHeight = 1080

	//renderer text layout
	MaxRenderedLines  = 10
	HeaderBarHeight   = 140
	FooterBarHeight   = 70
	ThumbnailBoxW     = 420
	ThumbnailBoxH     = 260
	ThumbnailDecodeTO = 2 * time.Second

	//extractor fallback tier
	FallbackTokenCap    = 50
	FallbackMinTokenLen = 2 //tokens must be strictly longer than this

	//viewer
	ZoomMin  = 0.25
	ZoomMax  = 3.0
	ZoomStep = 0.25

	//upload
	MaxUploadSize = 32 << 20 //32mb

	//source fetch
	SourceFetchTimeout = 30 * time.Second
	MaxSourceSize      = 128 << 20

	RequestsPerNewWorkerCount int64 = 10
	MaxWorkerCount            int64 = 10
	MinWorkerCount            int64 = 1
	IdleWorkerTimeout               = 1 * time.Minute

	//conversion job deadline - a whole deck must convert within this window
	ConversionTimeout = 120 * time.Second

	//serverTimeouts
	ReadTimeout            = 5 * time.Second
	WriteTimeout           = 30 * time.Second
	IdleTimeout            = 120 * time.Second
	ShutdownContextTimeout = 10 * time.Second

	//server listening port
	ServerListenAddr = ":3000"

	//job requests buffer limit
	BufferLimit = 100

	MaxIdleConns        = 50
	MaxIdleConnsPerHost = 25
	IdleConnTimeout     = 60 * time.Second

	//redis
	redisHost     = "127.0.0.1"
	redisPort     = "6379"
	RedisAddr     = redisHost + ":" + redisPort
	RedisPassword = ""

	//redis has 16 DB we can use
	RedisJobStore     = 0
	RedisDeckStore    = 1
	RedisSessionStore = 2

	//redis timeouts
	RedisJobStoreTTL     = 24 * time.Hour
	RedisDeckStoreTTL    = 24 * time.Hour
	RedisSessionStoreTTL = 12 * time.Hour
)
