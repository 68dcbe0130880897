// @title           Deck Conversion API
// @version         1.0
// @description     This API converts PPTX and PDF documents into rendered slide decks and drives paged viewer sessions.
// @termsOfService  http://swagger.io/terms/

// @contact.name    me lol
// @contact.url
// @contact.email

// @license.name    Apache 2.0
// @license.url     http://www.apache.org/licenses/LICENSE-2.0.html

// @host      localhost:3000
// @BasePath  /
// @schemes   http https
package main

import (
	"context"
	"flag"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/akurella/DeckAPI/internal/config"
	"github.com/akurella/DeckAPI/internal/convert"
	"github.com/akurella/DeckAPI/internal/data/store"
	jobmodel "github.com/akurella/DeckAPI/internal/domain/jobModel"
	"github.com/akurella/DeckAPI/internal/handlers"
	"github.com/akurella/DeckAPI/internal/job"
	"github.com/akurella/DeckAPI/internal/server"
	"github.com/akurella/DeckAPI/internal/worker"
	"github.com/akurella/DeckAPI/pkg/logger_i"
)

var (
	listenAddr        string
	requestCount      int64
	stopWorkerChannel chan bool
	workerWaitGroup   sync.WaitGroup
)

func main() {

	logger_i.Init()
	var logger = logger_i.NewLogger("main")

	//config
	flag.StringVar(&listenAddr, "listen-addr", config.ServerListenAddr, "server listen address")
	flag.Parse()

	//init buffered job channel
	jobChannel := make(chan jobmodel.Job, config.BufferLimit)
	dispatcherChannel := make(chan bool, 1)
	stopWorkerChannel = make(chan bool, 1)

	serviceContext, closeExternalServices := context.WithCancel(context.Background())
	defer closeExternalServices()

	//init job service and stores
	serviceConfig := job.ServiceConfig{
		JobChannel:        jobChannel,
		RequestCount:      requestCount,
		DispatcherChannel: dispatcherChannel,
	}
	logger.Info("Starting job service")

	//typed-nil check before the pointers land in the store interfaces
	jobStore := store.GetRedisJobStore(serviceContext)
	deckStore := store.GetRedisDeckStore(serviceContext)
	sessionStore := store.GetRedisSessionStore(serviceContext)
	if jobStore == nil || deckStore == nil || sessionStore == nil {
		logger.Error("Redis stores are offline")
		serviceConfig.JobStore = store.InitInMemoryJobStore()
		serviceConfig.DeckStore = store.InitInMemoryDeckStore()
		serviceConfig.SessionStore = store.InitInMemorySessionStore()
	} else {
		serviceConfig.JobStore = jobStore
		serviceConfig.DeckStore = deckStore
		serviceConfig.SessionStore = sessionStore
	}
	service := job.InitJobService(serviceConfig)

	convertService := convert.NewService(service.DeckStore)

	handlers.InitJobHandler(service)

	//init worker pool
	worker.InitServices(service, convertService)
	worker.InitWorkerPool(stopWorkerChannel, &workerWaitGroup)

	//server handling
	gracefulShutdown := make(chan os.Signal, 1)
	signal.Notify(gracefulShutdown, syscall.SIGINT, syscall.SIGTERM)
	stopExecution := make(chan bool, 1)

	shutdownParams := server.ShutdownParams{
		GracefulShutdown: gracefulShutdown,
		StopExecution:    stopExecution,
		WorkerStop:       stopWorkerChannel,
		Group:            &workerWaitGroup,
		CloseServices:    closeExternalServices,
	}
	go server.ShutDownHandler(shutdownParams)
	go server.CreateServer(listenAddr)

	<-stopExecution
	logger.Info("Server stopped")
}
