package di

import (
	"context"
	"log"
	"time"

	goredis "github.com/go-redis/redis/v8"
	"github.com/gorilla/mux"

	"chronos/api"
	"chronos/api/chronos"
	"chronos/config"
	redisdao "chronos/dao/redis"
	"chronos/db"
	"chronos/ical"
	"chronos/notify"
	"chronos/server"
	"chronos/server/handlers"
	services "chronos/service"
	"chronos/session"
)

// Container holds all application dependencies.
type Container struct {
	Session           *session.Session
	SessionPath       string
	RedisClient       db.RedisClient
	ForecastDao       *redisdao.RedisForecastDAO
	ChronosAPI        chronos.ChronosAPI
	AuthService       *services.AuthService
	WeatherService    *services.WeatherService
	ReminderService   *services.ReminderService
	EventService      *services.EventService
	ScheduleService   *services.ScheduleService
	AgendaService     *services.AgendaService
	RefresherService  *services.RefresherService
	CalendarHandler   *handlers.CalendarHandler
	MuxRouter         *mux.Router
	Router            *server.Router
	ChronosHttpServer *server.ChronosHttpServer
}

// NewContainer initializes and wires up all dependencies.
func NewContainer(env, sessionPath string) *Container {
	log.Printf("initializing container - env: %s", env)
	ctx := context.Background()

	sess, err := session.Load(sessionPath)
	if err != nil {
		log.Printf("Failed to load session from %s, starting fresh: %v", sessionPath, err)
		sess = session.Default()
	}

	// Initialize Redis-backed forecast cache; anything but a reachable
	// prod Redis falls back to the in-memory client.
	var redisClient db.RedisClient
	if env != "prod" {
		redisClient = db.NewMockRedisClient(ctx)
		log.Printf("Using in-memory forecast cache")
	} else {
		redisInternalClient := goredis.NewClient(&goredis.Options{
			Addr:     config.REDIS_DB_ADDRESS,
			Password: config.REDIS_DB_PASSWORD,
			DB:       config.REDIS_DB,
		})
		kvClient := db.NewKVRedisClient(ctx, redisInternalClient)
		if err := kvClient.Ping(); err != nil {
			log.Printf("Failed to connect to Redis, falling back to in-memory cache: %v", err)
			redisClient = db.NewMockRedisClient(ctx)
		} else {
			redisClient = kvClient
		}
	}

	forecastDao := redisdao.NewRedisForecastDAO(redisClient)

	// Initialize ChronosAPI - using mock outside prod
	var chronosApiClient chronos.ChronosAPI
	if env != "prod" {
		chronosApiClient = chronos.NewChronosApiClientMock()
		log.Printf("Using mock chronos api")
	} else {
		log.Printf("Using prod chronos api")
		httpClient := api.NewHTTPClient(config.APIBase())
		chronosApiClient = chronos.NewChronosApiClient(httpClient)
	}
	if sess.Token != "" {
		chronosApiClient.SetToken(sess.Token)
	}

	// Initialize service layer
	authService := services.NewAuthService(chronosApiClient, sess, sessionPath)
	weatherService := services.NewWeatherService(chronosApiClient, forecastDao, sess, sessionPath)
	reminderService := services.NewReminderService(notify.NewLogNotifier(), sess.NotificationHours, time.Local)
	eventService := services.NewEventService(chronosApiClient, weatherService, reminderService, sess, time.Local)
	scheduleService := services.NewScheduleService(chronosApiClient, sess)
	agendaService := services.NewAgendaService(eventService, chronosApiClient, time.Local)
	refresherService := services.NewRefresherService(eventService, weatherService, reminderService)

	// Initialize calendar handler
	calendarHandler := handlers.NewCalendarHandler(
		eventService, scheduleService, agendaService, ical.NewExporter(time.Local), sess)

	// Initialize mux router
	muxRouter := mux.NewRouter()

	// Initialize router
	router := server.NewRouter(calendarHandler, muxRouter)

	// initialize chronos server
	chronosHttpServer := server.NewChronosHttpServer(router, muxRouter)

	return &Container{
		Session:           sess,
		SessionPath:       sessionPath,
		RedisClient:       redisClient,
		ForecastDao:       forecastDao,
		ChronosAPI:        chronosApiClient,
		AuthService:       authService,
		WeatherService:    weatherService,
		ReminderService:   reminderService,
		EventService:      eventService,
		ScheduleService:   scheduleService,
		AgendaService:     agendaService,
		RefresherService:  refresherService,
		CalendarHandler:   calendarHandler,
		MuxRouter:         muxRouter,
		Router:            router,
		ChronosHttpServer: chronosHttpServer,
	}
}
