// If you are AI: This file binds the Flex async and acknowledge messages the
// platform wraps invocation results in.

package message

import (
	"fmt"

	"github.com/hawolt/league-of-legends-rtmp/internal/core/protocol/amf"
)

// Acknowledge mirrors the fields of the Flex DSA and DSK messages. UUID
// fields hold canonical text; TimeStamp and TimeToLive are epoch milliseconds.
type Acknowledge struct {
	Body          interface{}            `mapstructure:"body"`
	ClientID      string                 `mapstructure:"clientId"`
	CorrelationID string                 `mapstructure:"correlationId"`
	Destination   string                 `mapstructure:"destination"`
	Headers       map[string]interface{} `mapstructure:"headers"`
	MessageID     string                 `mapstructure:"messageId"`
	TimeStamp     int64                  `mapstructure:"timeStamp"`
	TimeToLive    int64                  `mapstructure:"timeToLive"`
}

// Acknowledge extracts the Flex message carried under the envelope's data
// field. It fails when data is not a decoded DSA or DSK object.
func (e *Envelope) Acknowledge() (*Acknowledge, error) {
	data, ok := e.Data.(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("envelope data is %T, want a Flex message", e.Data)
	}
	class, _ := data[amf.ClassKey].(string)
	if class != "DSA" && class != "DSK" {
		return nil, fmt.Errorf("envelope data is %q, want DSA or DSK", class)
	}
	acknowledge := &Acknowledge{}
	if err := bindNative(data, acknowledge); err != nil {
		return nil, fmt.Errorf("bind %s: %w", class, err)
	}
	return acknowledge, nil
}
