package density

import "golang.org/x/exp/constraints"

// ratio divides part by total, scaled to percent if requested. A zero total
// is not special cased; the caller gets NaN or Inf.
func ratio[F constraints.Float](part, total F, percentage bool) F {
	if percentage {
		return (part * 100) / total
	}
	return part / total
}
