package middleware

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo/v4"
	"github.com/rabbitmq/amqp091-go"

	"github.com/orglens/backend/pkg/store"
	pgxstore "github.com/orglens/backend/pkg/store/pgx"
)

type App struct {
	Queue   *amqp091.Channel
	Storage store.SnapshotStorage
}

type AppContext struct {
	echo.Context
	App *App
}

func AppContextMiddleware(
	db *pgxpool.Pool,
	queue *amqp091.Channel,
) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			app := &App{
				Queue:   queue,
				Storage: pgxstore.NewSnapshotDBStorage(db),
			}
			cc := &AppContext{c, app}
			return next(cc)
		}
	}
}
