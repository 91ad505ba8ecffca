package cli

import (
	"github.com/dkovalyov/go-user-store/internal/agent/api"
)

// для тестов
var (
	NewAPIClient = api.NewClient
)
