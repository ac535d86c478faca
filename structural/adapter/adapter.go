// Package adapter makes a JSON (REST style) data source usable by code that only
// speaks the XML (SOAP style) FetchData contract.
package adapter

import (
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
)

// RESTClient returns a raw JSON document such as
//
//	{"status":"success","data":{"value":42}}
type RESTClient interface {
	GetData() ([]byte, error)
}

// SOAPServer is the interface the client code expects.
type SOAPServer interface {
	FetchData() (string, error)
}

// StaticClient is a RESTClient that always returns Body.
type StaticClient struct{ Body []byte }

// DefaultBody is the document served by NewStaticClient.
const DefaultBody = `{"status":"success","data":{"value":42}}`

// NewStaticClient returns a client serving DefaultBody.
func NewStaticClient() StaticClient { return StaticClient{Body: []byte(DefaultBody)} }

// GetData implements RESTClient.
func (c StaticClient) GetData() ([]byte, error) { return c.Body, nil }

// LegacyServer is a native SOAPServer with a fixed answer.
type LegacyServer struct{}

// FetchData implements SOAPServer.
func (LegacyServer) FetchData() (string, error) {
	return "<response><status>success</status><value>42</value></response>", nil
}

type restResponse struct {
	Status string `json:"status"`
	Data   struct {
		Value int `json:"value"`
	} `json:"data"`
}

type soapResponse struct {
	XMLName xml.Name `xml:"response"`
	Status  string   `xml:"status"`
	Value   int      `xml:"value"`
}

// RESTToSOAP adapts a RESTClient to SOAPServer.
type RESTToSOAP struct {
	client RESTClient
}

// NewRESTToSOAP wraps client.
func NewRESTToSOAP(client RESTClient) *RESTToSOAP { return &RESTToSOAP{client: client} }

// FetchData implements SOAPServer by re-encoding the REST document.
func (a *RESTToSOAP) FetchData() (string, error) {
	body, err := a.client.GetData()
	if err != nil {
		return "", fmt.Errorf("adapter: get data: %w", err)
	}
	var in restResponse
	if err := json.Unmarshal(body, &in); err != nil {
		return "", fmt.Errorf("adapter: decode rest response: %w", err)
	}
	out, err := xml.Marshal(soapResponse{Status: in.Status, Value: in.Data.Value})
	if err != nil {
		return "", fmt.Errorf("adapter: encode soap response: %w", err)
	}
	return string(out), nil
}

// Process is the client code: it only knows SOAPServer.
func Process(w io.Writer, s SOAPServer) error {
	data, err := s.FetchData()
	if err != nil {
		return err
	}
	fmt.Fprintln(w, "Processing data from SOAP server:")
	fmt.Fprintln(w, data)
	return nil
}
