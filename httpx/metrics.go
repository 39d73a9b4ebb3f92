/*
   Copyright 2025 The DIRPX Authors

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

package httpx

import (
	"dirpx.dev/jsend/status"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics counts transmitted envelopes per status.
type Metrics struct {
	responses *prometheus.CounterVec
}

// NewMetrics creates the jsend_responses_total counter and registers it with
// reg. A nil reg leaves the collector unregistered.
func NewMetrics(reg prometheus.Registerer) (*Metrics, error) {
	m := &Metrics{
		responses: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: "jsend",
			Name:      "responses_total",
			Help:      "Number of jsend envelopes written, by status.",
		}, []string{"status"}),
	}
	if reg != nil {
		if err := reg.Register(m.responses); err != nil {
			return nil, err
		}
	}
	return m, nil
}

func (m *Metrics) observe(st status.Status) {
	if m == nil {
		return
	}
	m.responses.WithLabelValues(st.String()).Inc()
}
