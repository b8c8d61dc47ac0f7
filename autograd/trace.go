package autograd

import "go.uber.org/zap"

// Trace logs every node reachable from root, one entry per node in
// topological order (leaves first, root last). Intended for debugging small
// graphs: run it after Backward to see how gradients landed. A nil logger
// logs nothing.
func Trace(root *Value, log *zap.Logger) {
	if log == nil {
		log = zap.NewNop()
	}
	for i, node := range topoSort(root) {
		log.Debug("graph node",
			zap.Int("index", i),
			zap.String("op", node.op.String()),
			zap.Float64("value", node.Data),
			zap.Float64("grad", node.Grad),
			zap.Int("operands", len(node.children)),
		)
	}
}
