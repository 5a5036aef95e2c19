package vsm

import (
	"context"

	"github.com/go-sod/sax/internal/alphabet"
	"github.com/go-sod/sax/internal/logging"
	"github.com/go-sod/sax/internal/sax"
	"github.com/go-sod/sax/internal/saxerr"
)

// UnknownLabel is reported when no class shares a word with the series.
const UnknownLabel = "unknown"

// Sample is one labelled series.
type Sample struct {
	Label  string    `json:"class"`
	Series []float64 `json:"timeseries"`
}

// Prediction pairs the true and the predicted class of a test series.
type Prediction struct {
	Actual    string    `json:"actual"`
	Predicted string    `json:"predicted"`
	Series    []float64 `json:"timeseries"`
}

type Evaluation struct {
	Predictions []Prediction     `json:"predictions"`
	Confusion   *ConfusionMatrix `json:"confusion"`
	Accuracy    float64          `json:"accuracy"`
	Error       float64          `json:"error"`
}

type Classifier struct {
	cfg     sax.Config
	cuts    []float64
	labels  []string
	weights map[string]Weights
}

// NewClassifier validates cfg. The classifier always uses sliding windows.
func NewClassifier(cfg sax.Config, a alphabet.Alphabet) (*Classifier, error) {
	if cfg.Chunking() {
		return nil, saxerr.InvalidParameter("SAX-VSM needs a positive window size")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	cuts, err := a.Cuts(cfg.AlphabetSize)
	if err != nil {
		return nil, err
	}
	return &Classifier{cfg: cfg, cuts: cuts}, nil
}

// SeriesToWordBag counts the sliding-window words of series.
func (c *Classifier) SeriesToWordBag(ctx context.Context, label string, series []float64) (*WordBag, error) {
	if len(series) < c.cfg.WindowSize {
		return nil, saxerr.InvalidInput("series of class %q has %d values, shorter than the window %d",
			label, len(series), c.cfg.WindowSize)
	}
	idx, err := sax.ViaWindow(ctx, series, c.cfg.WindowSize, c.cfg.PAASize, c.cuts, c.cfg.Strategy, c.cfg.NormThreshold)
	if err != nil {
		return nil, err
	}
	bag := NewWordBag(label)
	for _, r := range idx.Records() {
		bag.words[r.Word] += r.Frequency()
	}
	return bag, nil
}

// Train merges the samples of each class into one bag and weights the
// class vocabularies with TF-IDF. Previous training is discarded.
func (c *Classifier) Train(ctx context.Context, samples []Sample) error {
	if len(samples) == 0 {
		return saxerr.InvalidInput("empty training set")
	}
	var labels []string
	bags := make(map[string]*WordBag)
	for _, s := range samples {
		b, err := c.SeriesToWordBag(ctx, s.Label, s.Series)
		if err != nil {
			return err
		}
		merged, ok := bags[s.Label]
		if !ok {
			merged = NewWordBag(s.Label)
			bags[s.Label] = merged
			labels = append(labels, s.Label)
		}
		merged.MergeWith(b)
	}

	corpus := make([]*WordBag, 0, len(labels))
	for _, l := range labels {
		corpus = append(corpus, bags[l])
	}
	c.labels = labels
	c.weights = ComputeTFIDF(corpus)

	logging.FromContext(ctx).Infof("trained SAX-VSM on %d series in %d classes", len(samples), len(labels))
	return nil
}

// Labels returns the trained classes in order of first appearance.
func (c *Classifier) Labels() []string {
	res := make([]string, len(c.labels))
	copy(res, c.labels)
	return res
}

func (c *Classifier) Weights(label string) (Weights, bool) {
	w, ok := c.weights[label]
	return w, ok
}

// Predict returns the class most similar to series, or an empty label when
// every similarity is zero. Ties go to the class seen first in training.
func (c *Classifier) Predict(ctx context.Context, series []float64) (string, error) {
	if c.weights == nil {
		return "", saxerr.InvalidInput("classifier is not trained")
	}
	bag, err := c.SeriesToWordBag(ctx, "test", series)
	if err != nil {
		return "", err
	}
	return c.predictBag(bag), nil
}

func (c *Classifier) predictBag(bag *WordBag) string {
	best, label := 0.0, ""
	for _, l := range c.labels {
		if sim := CosineSimilarity(bag, c.weights[l]); sim > best {
			best, label = sim, l
		}
	}
	return label
}

// Evaluate predicts every test sample and tallies a confusion matrix over
// the union of training and test classes.
func (c *Classifier) Evaluate(ctx context.Context, test []Sample) (*Evaluation, error) {
	if c.weights == nil {
		return nil, saxerr.InvalidInput("classifier is not trained")
	}
	if len(test) == 0 {
		return nil, saxerr.InvalidInput("empty test set")
	}

	labels := c.Labels()
	for _, s := range test {
		labels = append(labels, s.Label)
	}
	res := &Evaluation{Confusion: NewConfusionMatrix(labels)}

	correct := 0
	for _, s := range test {
		if err := saxerr.Poll(ctx); err != nil {
			return nil, err
		}
		predicted, err := c.Predict(ctx, s.Series)
		if err != nil {
			return nil, err
		}
		if predicted == s.Label {
			correct++
		}
		res.Confusion.Add(predicted, s.Label)
		if predicted == "" {
			predicted = UnknownLabel
		}
		res.Predictions = append(res.Predictions, Prediction{Actual: s.Label, Predicted: predicted, Series: s.Series})
	}
	res.Accuracy = float64(correct) / float64(len(test))
	res.Error = 1 - res.Accuracy

	logging.FromContext(ctx).Infof("SAX-VSM accuracy %.4f on %d test series", res.Accuracy, len(test))
	return res, nil
}
