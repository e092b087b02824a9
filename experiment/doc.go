// Package experiment drives reachability sweeps of the gossip protocols over
// unstable random geometric graphs.
//
// A run is described by a Config (YAML, validated with struct tags):
//
//	protocols:           # one result file each
//	  - {id: GMBC, fanout: 4}
//	  - {id: FFG,  fanout: 4}
//	graph: {nodes: 1000, radius: 10, x_range: 150, y_range: 150}
//	sweep: {kind: varying, start: 0, finish: 1, delta: 0.1}
//	trials: 50           # graphs per sweep point
//	graph_trials: 10     # trials per graph
//
// Sweep kinds:
//
//	varying  edge churn rate (or edges toggled per pass with fixed_count)
//	biased   checkerboard bias at a fixed edge churn rate
//	churn    node churn rate
//	update   GMBC table refresh rate at a fixed edge churn rate
//
// Every trial re-arms the instability model, then the protocol engine, and
// alternates one model step with one protocol hop until the message stops
// spreading. Results go to a Sink (CSVSink writes <protocol>.csv files);
// metrics go to a telemetry.Registry; progress goes to a zap logger.
package experiment
