package proxy

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/RehanShaikh007/texhub-backend/api-gateway/config"
	"github.com/RehanShaikh007/texhub-backend/api-gateway/loadbalancer"
	"github.com/RehanShaikh007/texhub-backend/pkg/logger"
)

const maxRetries = 3

// ReverseProxy handles proxying requests to backend instances
type ReverseProxy struct {
	config        *config.GatewayConfig
	client        *http.Client
	loadBalancers map[string]*loadbalancer.RoundRobin
}

// NewReverseProxy creates a new reverse proxy
func NewReverseProxy(cfg *config.GatewayConfig) *ReverseProxy {
	loadBalancers := make(map[string]*loadbalancer.RoundRobin)

	for name, svc := range cfg.Services {
		loadBalancers[name] = loadbalancer.NewRoundRobin(svc.Instances)
	}

	return &ReverseProxy{
		config:        cfg,
		loadBalancers: loadBalancers,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// ProxyRequest forwards the request to the target service, retrying
// on a different instance when the connection fails
func (p *ReverseProxy) ProxyRequest(c *fiber.Ctx, serviceName string) error {
	lb, lbExists := p.loadBalancers[serviceName]
	if !lbExists {
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": fmt.Sprintf("Load balancer for '%s' not found", serviceName),
		})
	}

	body := c.Body()

	var lastErr error
	for attempt := 0; attempt < maxRetries; attempt++ {
		serverURL := lb.Next()
		if serverURL == "" {
			return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
				"error": fmt.Sprintf("No available instances for '%s'", serviceName),
			})
		}

		logger.Logger.Debug().
			Str("service", serviceName).
			Str("target_url", serverURL).
			Str("path", c.Path()).
			Int("attempt", attempt+1).
			Msg("Load balancer selected instance")

		targetURL := p.buildTargetURL(c, serverURL)

		req, err := http.NewRequest(c.Method(), targetURL, bytes.NewReader(body))
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to create request",
			})
		}

		p.copyHeaders(c, req)

		resp, err := p.client.Do(req)
		if err != nil {
			lastErr = err
			logger.Logger.Warn().
				Err(err).
				Str("service", serviceName).
				Str("target_url", serverURL).
				Msg("Backend request failed, retrying")
			time.Sleep(time.Duration(attempt+1) * 100 * time.Millisecond)
			continue
		}
		defer resp.Body.Close()

		p.copyResponseHeaders(c, resp)
		c.Status(resp.StatusCode)

		respBody, err := io.ReadAll(resp.Body)
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
				"error": "Failed to read response",
			})
		}

		return c.Send(respBody)
	}

	return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
		"error":   "Failed to reach backend service",
		"service": serviceName,
		"details": lastErr.Error(),
	})
}

// buildTargetURL constructs the full URL for the backend instance
func (p *ReverseProxy) buildTargetURL(c *fiber.Ctx, serverURL string) string {
	path := string(c.Request().URI().Path())

	queryString := string(c.Request().URI().QueryString())
	if queryString != "" {
		queryString = "?" + queryString
	}

	return serverURL + path + queryString
}

// GetLoadBalancers returns all load balancers (for stats)
func (p *ReverseProxy) GetLoadBalancers() map[string]*loadbalancer.RoundRobin {
	return p.loadBalancers
}

// copyHeaders copies relevant headers from Fiber context to http.Request
func (p *ReverseProxy) copyHeaders(c *fiber.Ctx, req *http.Request) {
	c.Request().Header.VisitAll(func(key, value []byte) {
		keyStr := string(key)
		if strings.ToLower(keyStr) == "host" {
			return
		}
		req.Header.Set(keyStr, string(value))
	})

	if contentType := c.Get("Content-Type"); contentType != "" {
		req.Header.Set("Content-Type", contentType)
	}

	if auth := c.Get("Authorization"); auth != "" {
		req.Header.Set("Authorization", auth)
	}

	req.Header.Set("X-Forwarded-For", c.IP())
	req.Header.Set("X-Forwarded-Proto", c.Protocol())
	req.Header.Set("X-Forwarded-Host", c.Hostname())
}

// copyResponseHeaders copies headers from http.Response to Fiber context
func (p *ReverseProxy) copyResponseHeaders(c *fiber.Ctx, resp *http.Response) {
	for key, values := range resp.Header {
		if strings.ToLower(key) == "content-length" {
			continue
		}
		for _, value := range values {
			c.Set(key, value)
		}
	}
}
