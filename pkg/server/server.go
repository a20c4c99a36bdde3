package server

import (
	"encoding/binary"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/swypelab/swyft/internal/utils"
	"github.com/swypelab/swyft/pkg/predictor"
)

const maxFrameSize = 1 << 20 // 1 MiB, comfortably above any real trace+k payload

// Server handles msgpack IPC prediction requests over stdin/stdout.
type Server struct {
	pred   *predictor.Predictor
	reader io.Reader
	writer io.Writer
	defK   int
	maxK   int
}

// NewServer creates a prediction IPC server backed by pred.
func NewServer(pred *predictor.Predictor, defaultK, maxK int) *Server {
	return &Server{
		pred:   pred,
		reader: os.Stdin,
		writer: os.Stdout,
		defK:   defaultK,
		maxK:   maxK,
	}
}

// Start begins reading framed requests from stdin until EOF.
func (s *Server) Start() error {
	log.Debug("starting prediction server")

	for {
		frame, err := readFrame(s.reader)
		if err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("reading frame: %v", err)
			return err
		}

		var req PredictRequest
		if err := msgpack.Unmarshal(frame, &req); err != nil {
			s.sendError("", "invalid msgpack request", 400)
			log.Errorf("unmarshaling request: %v", err)
			continue
		}

		s.handleRequest(req)
	}
}

func (s *Server) handleRequest(req PredictRequest) {
	if req.Trace == "" {
		s.sendError(req.ID, "missing 'trace' field", 400)
		return
	}
	if len(req.Trace) > 1 && !utils.IsValidInput(req.Trace) {
		s.sendError(req.ID, "trace rejected by input filter", 400)
		return
	}

	k := req.K
	if k <= 0 {
		k = s.defK
	}
	if k > s.maxK {
		k = s.maxK
	}

	start := time.Now()
	preds := s.pred.Predict(req.Trace, k)
	elapsed := time.Since(start)

	wire := make([]PredictionWire, len(preds))
	for i, p := range preds {
		wire[i] = PredictionWire{Word: p.Word, Score: p.Score, Freq: p.Freq}
	}

	s.send(PredictResponse{
		ID:          req.ID,
		Predictions: wire,
		Count:       len(wire),
		TimeTaken:   elapsed.Milliseconds(),
	})
}

func (s *Server) send(v any) {
	data, err := msgpack.Marshal(v)
	if err != nil {
		log.Errorf("marshaling response: %v", err)
		return
	}
	if err := writeFrame(s.writer, data); err != nil {
		log.Errorf("writing frame: %v", err)
	}
}

func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func readFrame(r io.Reader) ([]byte, error) {
	var lenBuf [4]byte
	if _, err := io.ReadFull(r, lenBuf[:]); err != nil {
		return nil, err
	}
	n := binary.BigEndian.Uint32(lenBuf[:])
	if n > maxFrameSize {
		return nil, fmt.Errorf("server: frame of %d bytes exceeds limit", n)
	}
	buf := make([]byte, n)
	if _, err := io.ReadFull(r, buf); err != nil {
		return nil, err
	}
	return buf, nil
}

func writeFrame(w io.Writer, data []byte) error {
	var lenBuf [4]byte
	binary.BigEndian.PutUint32(lenBuf[:], uint32(len(data)))
	if _, err := w.Write(lenBuf[:]); err != nil {
		return err
	}
	_, err := w.Write(data)
	return err
}
