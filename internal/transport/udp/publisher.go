// SPDX-License-Identifier: MIT
package udp

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"sync"
	"time"

	applog "github.com/nikhiloz/generic/internal/log"
)

// Sampler provides the value each snapshot packet carries. The
// guarded tally counter satisfies this.
type Sampler interface {
	Value() int64
}

// SnapshotPublisher periodically samples a counter, packs the value
// into a small binary packet and sends it over UDP through a
// UDPSender. It runs in a separate goroutine managed by Start and
// Stop.
type SnapshotPublisher struct {
	sender   *UDPSender    // The underlying UDP sender instance.
	sampler  Sampler       // Source of the published values.
	interval time.Duration // The interval at which packets are sent.

	ticker   *time.Ticker   // Ticker that triggers packet sending.
	doneChan chan struct{}  // Signals the publisher goroutine to stop.
	stopOnce sync.Once      // Ensures the stop logic runs once per Start/Stop cycle.
	wg       sync.WaitGroup // Waits for the goroutine during Stop.
	mu       sync.Mutex     // Protects ticker and doneChan during Start/Stop.

	sequenceNum uint32 // Monotonically increasing packet sequence.

	// Reusable buffer for constructing the binary packet.
	packetBuffer *bytes.Buffer
}

// NewSnapshotPublisher creates and initializes a SnapshotPublisher.
// It requires a valid UDPSender and Sampler. If the provided interval
// is invalid (<= 0), it defaults to 100ms.
func NewSnapshotPublisher(interval time.Duration, sender *UDPSender, sampler Sampler) (*SnapshotPublisher, error) {
	if sender == nil {
		return nil, fmt.Errorf("SnapshotPublisher: UDP sender cannot be nil")
	}
	if sampler == nil {
		return nil, fmt.Errorf("SnapshotPublisher: sampler cannot be nil")
	}

	if interval <= 0 {
		interval = 100 * time.Millisecond
		applog.Warnf("SnapshotPublisher: Invalid interval provided, defaulting to %s", interval)
	}

	applog.Infof("SnapshotPublisher: Initializing (Interval: %s)", interval)

	return &SnapshotPublisher{
		sender:       sender,
		sampler:      sampler,
		interval:     interval,
		packetBuffer: new(bytes.Buffer),
	}, nil
}

// Start begins the periodic publishing process. It launches a
// goroutine that ticks at the configured interval, sending one
// snapshot per tick until Stop is called. Safe to call more than
// once; subsequent calls are no-ops while running.
func (p *SnapshotPublisher) Start() {
	p.mu.Lock()
	if p.ticker != nil {
		p.mu.Unlock()
		applog.Warnf("SnapshotPublisher: Start called but already running.")
		return
	}

	p.ticker = time.NewTicker(p.interval)
	p.doneChan = make(chan struct{})
	p.stopOnce = sync.Once{} // Reset for this run

	// Capture locals so the goroutine does not race Start/Stop on
	// the struct fields.
	ticker := p.ticker
	doneChan := p.doneChan

	p.mu.Unlock()

	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		applog.Infof("SnapshotPublisher: Publisher goroutine started (Interval: %s)", p.interval)
		for {
			select {
			case <-ticker.C:
				p.buildAndSendPacket()
			case <-doneChan:
				applog.Infof("SnapshotPublisher: Publisher goroutine received stop signal.")
				return
			}
		}
	}()
}

// Stop gracefully signals the publisher goroutine to terminate and
// waits for it to exit. Safe to call more than once.
func (p *SnapshotPublisher) Stop() error {
	p.mu.Lock()
	if p.ticker == nil {
		p.mu.Unlock()
		applog.Debugf("SnapshotPublisher: Stop called but not running.")
		return nil
	}

	p.stopOnce.Do(func() {
		applog.Infof("SnapshotPublisher: Initiating stop sequence...")
		close(p.doneChan)
		p.ticker.Stop()
		p.ticker = nil
	})

	p.mu.Unlock()

	p.wg.Wait()
	applog.Debugf("SnapshotPublisher: Publisher goroutine finished.")
	return nil
}

/*
Snapshot Packet Structure (BigEndian)

+----------------------------------------------------------------------+
| Field             | Data Type      | Size (Bytes) | Description      |
|-------------------|----------------|--------------|------------------|
| Sequence Number   | uint32         | 4            | Monotonic        |
| Timestamp         | int64          | 8            | Unix nanoseconds |
| Counter Value     | int64          | 8            | Sampled tally    |
+----------------------------------------------------------------------+

Visual Layout:

|<---- 4 Bytes ---->|<------ 8 Bytes ------>|<------ 8 Bytes ------>|
+-------------------+-----------------------+-----------------------+
|  Sequence Number  |       Timestamp       |     Counter Value     |
|      (uint32)     |        (int64)        |        (int64)        |
+-------------------+-----------------------+-----------------------+
*/

// PacketSize is the fixed length of one snapshot packet.
const PacketSize = 4 + 8 + 8

// buildAndSendPacket samples the counter, packs the header and value
// in BigEndian order and hands the packet to the sender. Errors skip
// the packet; the next tick tries again.
func (p *SnapshotPublisher) buildAndSendPacket() {
	value := p.sampler.Value()

	p.sequenceNum++
	timestamp := time.Now().UnixNano()

	p.packetBuffer.Reset()

	err := binary.Write(p.packetBuffer, binary.BigEndian, p.sequenceNum)
	if err == nil {
		err = binary.Write(p.packetBuffer, binary.BigEndian, timestamp)
	}
	if err == nil {
		err = binary.Write(p.packetBuffer, binary.BigEndian, value)
	}
	if err != nil {
		applog.Errorf("SnapshotPublisher: Error packing data into binary buffer: %v", err)
		return
	}

	packetBytes := p.packetBuffer.Bytes()
	if err := p.sender.Send(packetBytes); err == nil {
		applog.Debugf("SnapshotPublisher: Sent packet %d (%d bytes)", p.sequenceNum, len(packetBytes))
	}
}

// Close implements io.Closer. It gracefully stops the publisher.
func (p *SnapshotPublisher) Close() error {
	applog.Debugf("SnapshotPublisher: Close called, stopping publisher...")
	return p.Stop()
}

// Ensure SnapshotPublisher satisfies the io.Closer interface.
var _ interface{ Close() error } = (*SnapshotPublisher)(nil)
