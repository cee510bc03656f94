package rates

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/beevik/etree"
	"github.com/sirupsen/logrus"

	"github.com/dealgrind/underwriting-service/internal/config"
)

// Client fetches current mortgage rates from an XML rate feed. The quoted
// rate seeds the financing defaults of a new analysis; it is never used to
// recompute stored metrics.
type Client struct {
	url       string
	marginPct float64
	client    *http.Client
	log       *logrus.Logger
}

// NewClient initializes a new rate feed client
func NewClient(cfg *config.Config, log *logrus.Logger) *Client {
	return &Client{
		url:       cfg.RatesURL,
		marginPct: cfg.LenderMarginPct,
		client: &http.Client{
			Timeout: 10 * time.Second,
		},
		log: log,
	}
}

// buildQuery creates the feed query for a fixed-rate product
func (c *Client) buildQuery(product string) string {
	asOf := time.Now().Format("2006-01-02")
	return fmt.Sprintf(`<?xml version="1.0" encoding="utf-8"?>
		<RateQuery>
			<Product>%s</Product>
			<AsOf>%s</AsOf>
		</RateQuery>`, product, asOf)
}

// sendQuery posts the query to the feed
func (c *Client) sendQuery(query string) ([]byte, error) {
	req, err := http.NewRequest("POST", c.url, bytes.NewBufferString(query))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %v", err)
	}
	req.Header.Set("Content-Type", "application/xml; charset=utf-8")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request failed: %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %v", err)
	}

	c.log.Debugf("Rate feed XML response: %s", string(body))
	return body, nil
}

// parseResponse extracts the newest quote for the product from the feed XML
func (c *Client) parseResponse(rawBody []byte) (float64, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(rawBody); err != nil {
		return 0, fmt.Errorf("failed to parse XML: %v", err)
	}

	quotes := doc.FindElements("//RateFeed/Quotes/Quote")
	if len(quotes) == 0 {
		return 0, fmt.Errorf("no rate quotes found in XML")
	}

	// Quotes come newest first
	rateElement := quotes[0].FindElement("./Rate")
	if rateElement == nil {
		return 0, fmt.Errorf("rate element not found in XML")
	}

	var rate float64
	if _, err := fmt.Sscanf(rateElement.Text(), "%f", &rate); err != nil {
		return 0, fmt.Errorf("failed to parse rate: %v", err)
	}

	return rate, nil
}

// GetMortgageRate retrieves the current 30-year fixed rate and adds the
// configured lender margin
func (c *Client) GetMortgageRate() (float64, error) {
	body, err := c.sendQuery(c.buildQuery("MORTGAGE30US"))
	if err != nil {
		return 0, err
	}

	rate, err := c.parseResponse(body)
	if err != nil {
		return 0, err
	}

	rate += c.marginPct
	c.log.Infof("Retrieved mortgage rate: %.2f%% (including %.2f%% lender margin)", rate, c.marginPct)
	return rate, nil
}
