package bootstrap

import (
	"time"

	"emogo-be/internal/config"
	"emogo-be/internal/controller"
	"emogo-be/internal/pkg/logger"
	"emogo-be/internal/repository/contract"
	"emogo-be/internal/repository/implementation"
	"emogo-be/internal/service"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"go.mongodb.org/mongo-driver/mongo"
)

type Container struct {
	// Controllers
	UploadController controller.IUploadController
	DataController   controller.IDataController
	VlogController   controller.IVlogController

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	Logger logger.ILogger
}

func NewContainer(db *mongo.Database, cfg *config.Config) *Container {
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.App.Environment == "production")

	// Event Bus
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)

	// Repositories
	sentimentRepo := implementation.NewSentimentRepository(db)
	gpsRepo := implementation.NewGpsRepository(db)
	vlogRepo := implementation.NewVlogRepository(db)

	return newContainer(cfg, sysLogger, pubSub, sentimentRepo, gpsRepo, vlogRepo)
}

// NewContainerWithRepositories wires the same graph over caller-supplied
// repositories. Tests use it with the memory implementations.
func NewContainerWithRepositories(
	cfg *config.Config,
	sysLogger logger.ILogger,
	sentimentRepo contract.SentimentRepository,
	gpsRepo contract.GpsRepository,
	vlogRepo contract.VlogRepository,
) *Container {
	watermillLogger := watermill.NewStdLogger(false, false)
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermillLogger,
	)
	return newContainer(cfg, sysLogger, pubSub, sentimentRepo, gpsRepo, vlogRepo)
}

func newContainer(
	cfg *config.Config,
	sysLogger logger.ILogger,
	pubSub *gochannel.GoChannel,
	sentimentRepo contract.SentimentRepository,
	gpsRepo contract.GpsRepository,
	vlogRepo contract.VlogRepository,
) *Container {
	// Services
	publisherService := service.NewPublisherService(cfg.Topics.RecordCreated, pubSub)
	ingestionService := service.NewIngestionService(sentimentRepo, gpsRepo, vlogRepo, publisherService, sysLogger)
	aggregationService := service.NewAggregationService(
		sentimentRepo, gpsRepo, vlogRepo,
		cfg.Limits.DataViewLimit,
		cfg.Limits.ExportLimit,
		time.Duration(cfg.Limits.DataCacheSeconds)*time.Second,
	)
	exportService := service.NewExportService(
		sentimentRepo, gpsRepo, vlogRepo,
		aggregationService,
		cfg.App.BaseURL,
		cfg.Limits.ExportLimit,
	)
	videoService := service.NewVideoService(vlogRepo)
	consumerService := service.NewConsumerService(pubSub, cfg.Topics.RecordCreated, aggregationService, sysLogger)

	return &Container{
		UploadController: controller.NewUploadController(ingestionService),
		DataController:   controller.NewDataController(aggregationService, exportService, cfg.App.BaseURL),
		VlogController:   controller.NewVlogController(videoService),
		ConsumerService:  consumerService,
		Logger:           sysLogger,
	}
}
