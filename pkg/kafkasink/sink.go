// Package kafkasink, domain olaylarını bir Kafka topic'ine yazar.
//
// Olaylar Publish ile tampona alınır ve Run goroutine'i tarafından yazılır;
// HTTP istekleri Kafka'nın yanıt süresini beklemez. Tampon doluysa olay
// düşürülür ve loglanır. Kafka yan kanaldır, uygulamanın doğruluğu ona bağlı değildir.
package kafkasink

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"
)

// MessageWriter, kafka.Writer'ın kullandığımız alt kümesi.
// Testlerde sahte bir writer verilir.
type MessageWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
	Close() error
}

// Sink, tamponlu Kafka yazıcısı.
type Sink struct {
	writer MessageWriter
	buf    chan kafka.Message
	log    *zap.Logger

	closeOnce sync.Once
	done      chan struct{}
}

// New, broker listesi ve topic için bir Sink oluşturur.
func New(brokers []string, topic string, logger *zap.Logger) *Sink {
	w := &kafka.Writer{
		Addr:                   kafka.TCP(brokers...),
		Topic:                  topic,
		Balancer:               &kafka.Hash{},
		BatchTimeout:           50 * time.Millisecond,
		AllowAutoTopicCreation: true,
	}
	return NewWithWriter(w, 256, logger)
}

// NewWithWriter, verilen writer ile Sink kurar. bufferSize tampon kapasitesidir.
func NewWithWriter(w MessageWriter, bufferSize int, logger *zap.Logger) *Sink {
	return &Sink{
		writer: w,
		buf:    make(chan kafka.Message, bufferSize),
		log:    logger.Named("kafka"),
		done:   make(chan struct{}),
	}
}

// Publish, değeri JSON'a çevirip tampona ekler. Aynı key'e sahip olaylar
// aynı partition'a düşer (ör: restoran id'si).
func (s *Sink) Publish(key string, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to marshal kafka event: %w", err)
	}

	select {
	case <-s.done:
		return fmt.Errorf("kafka sink closed")
	default:
	}

	select {
	case s.buf <- kafka.Message{Key: []byte(key), Value: data, Time: time.Now()}:
		return nil
	default:
		s.log.Warn("event buffer full, dropping event", zap.String("key", key))
		return fmt.Errorf("kafka sink buffer full")
	}
}

// Run, ctx iptal edilene veya Close çağrılana kadar tampondaki olayları yazar.
// Çıkarken tamponda kalanları yazmayı dener ve writer'ı kapatır.
func (s *Sink) Run(ctx context.Context) error {
	defer func() {
		if err := s.writer.Close(); err != nil {
			s.log.Warn("failed to close kafka writer", zap.Error(err))
		}
	}()

	for {
		select {
		case msg := <-s.buf:
			s.write(ctx, msg)
		case <-ctx.Done():
			s.drain()
			return nil
		case <-s.done:
			s.drain()
			return nil
		}
	}
}

// Close, Run döngüsünü durdurur.
func (s *Sink) Close() {
	s.closeOnce.Do(func() { close(s.done) })
}

func (s *Sink) write(ctx context.Context, msg kafka.Message) {
	wctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := s.writer.WriteMessages(wctx, msg); err != nil {
		s.log.Error("failed to write event", zap.String("key", string(msg.Key)), zap.Error(err))
	}
}

// drain, kapanışta tamponda kalan olayları kısa bir süre içinde yazar.
func (s *Sink) drain() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	for {
		select {
		case msg := <-s.buf:
			s.write(ctx, msg)
		default:
			return
		}
	}
}
