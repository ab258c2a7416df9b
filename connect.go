package mongokit

import (
	"context"
	"errors"
	"log/slog"
	"net/url"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Connection holds a connected client and the database resolved from the
// connection URL's path. Both handles are safe for concurrent use to the
// extent the driver's handles are.
type Connection struct {
	Client   *mongo.Client
	Database *mongo.Database
}

// ConnectOption configures Connect beyond what Config carries.
type ConnectOption func(*connectOptions)

type connectOptions struct {
	commandLogger *slog.Logger
}

// WithCommandLogger logs every driver command start, success, and failure
// through the given slog logger. Nil loggers are ignored.
func WithCommandLogger(log *slog.Logger) ConnectOption {
	return func(o *connectOptions) {
		if log != nil {
			o.commandLogger = log
		}
	}
}

// Connect establishes a client and resolves the database named by the URL
// path. The initial connect+ping is retried cfg.RetryAttempts times with
// cfg.RetryInterval between attempts; everything past that point (pooling,
// operation retries, failover) is the driver's business.
func Connect(ctx context.Context, cfg Config, opts ...ConnectOption) (*Connection, error) {
	dbName, err := DatabaseNameFromURL(cfg.ConnectionURL)
	if err != nil {
		return nil, err
	}

	var co connectOptions
	for _, opt := range opts {
		opt(&co)
	}

	clientOpts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetConnectTimeout(cfg.ConnectTimeout).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime).
		SetRetryWrites(cfg.RetryWrites).
		SetRetryReads(cfg.RetryReads)
	if co.commandLogger != nil {
		clientOpts = clientOpts.SetMonitor(commandMonitor(co.commandLogger))
	}

	// Retry to connect to the mongo server
	for range max(cfg.RetryAttempts, 1) {
		client, err := mongo.Connect(clientOpts)
		if err == nil {
			if err := client.Ping(ctx, nil); err == nil {
				return &Connection{
					Client:   client,
					Database: client.Database(dbName),
				}, nil
			}
			_ = client.Disconnect(ctx)
		}

		if ctx.Err() != nil {
			return nil, errors.Join(ErrFailedToConnect, ctx.Err())
		}

		// Wait for the next retry interval
		time.Sleep(cfg.RetryInterval)
	}

	return nil, ErrFailedToConnect
}

// Close disconnects the underlying client.
func (c *Connection) Close(ctx context.Context) error {
	return c.Client.Disconnect(ctx)
}

// Healthcheck returns a health check function suitable for readiness/liveness
// probes. It performs a lightweight ping to verify connectivity.
func (c *Connection) Healthcheck() func(context.Context) error {
	return func(ctx context.Context) error {
		if err := c.Client.Ping(ctx, nil); err != nil {
			return errors.Join(ErrHealthcheckFailed, err)
		}
		return nil
	}
}

// DatabaseNameFromURL extracts the database name from the path component of a
// MongoDB connection URL, e.g. "mongodb://localhost:27017/appdb" -> "appdb".
func DatabaseNameFromURL(rawURL string) (string, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "", err
	}
	name := strings.TrimPrefix(u.Path, "/")
	if name == "" {
		return "", ErrMissingDatabaseName
	}
	return name, nil
}
