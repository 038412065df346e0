package db

import (
	"context"
	"encoding/base64"
	"fmt"

	"cloud.google.com/go/firestore"
	firebase "firebase.google.com/go/v4"
	"google.golang.org/api/option"

	"realestate-backend-go/internal/config"
)

// Client wraps the Firestore client behind an explicit lifecycle: it is
// constructed once at startup, injected into the repositories, and closed
// on shutdown. Nothing in this package holds process-wide state.
type Client struct {
	fs *firestore.Client
}

// NewClient initializes the Firebase Admin SDK and returns a connected
// Firestore client. Credentials are resolved in order: a service account
// file path, a base64-encoded service account JSON blob, or Application
// Default Credentials.
func NewClient(ctx context.Context, appConfig *config.Config) (*Client, error) {
	if appConfig == nil {
		return nil, fmt.Errorf("db.NewClient: appConfig cannot be nil")
	}

	var opts []option.ClientOption
	switch {
	case appConfig.GoogleApplicationCredentials != "":
		opts = append(opts, option.WithCredentialsFile(appConfig.GoogleApplicationCredentials))
	case appConfig.FirebaseServiceAccountJSONBase64 != "":
		decoded, err := base64.StdEncoding.DecodeString(appConfig.FirebaseServiceAccountJSONBase64)
		if err != nil {
			return nil, fmt.Errorf("failed to decode FIREBASE_SERVICE_ACCOUNT_JSON_BASE64: %w", err)
		}
		opts = append(opts, option.WithCredentialsJSON(decoded))
	default:
		// No explicit credentials: rely on Application Default Credentials,
		// which covers GCE, GKE, Cloud Run and local gcloud setups.
	}

	var firebaseAppConfig *firebase.Config
	if appConfig.FirebaseProjectID != "" {
		firebaseAppConfig = &firebase.Config{ProjectID: appConfig.FirebaseProjectID}
	}

	app, err := firebase.NewApp(ctx, firebaseAppConfig, opts...)
	if err != nil {
		return nil, fmt.Errorf("firebase.NewApp: %w", err)
	}

	fs, err := app.Firestore(ctx)
	if err != nil {
		return nil, fmt.Errorf("app.Firestore: %w", err)
	}

	return &Client{fs: fs}, nil
}

// Firestore exposes the underlying Firestore client to the repositories.
func (c *Client) Firestore() *firestore.Client {
	return c.fs
}

// Close releases the underlying Firestore connection.
func (c *Client) Close() error {
	return c.fs.Close()
}
