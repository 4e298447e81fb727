package catalog

// Default returns the built-in system design roadmap.
// It panics if the seed data fails validation, which only a bad edit can cause.
func Default() *Catalog {
	c, err := New(seedNodes(), seedEdges())
	if err != nil {
		panic(err)
	}
	return c
}

func seedNodes() []TopicNode {
	return []TopicNode{
		// Fundamentals
		{
			ID: "scalability", Category: CategoryFundamentals, Title: "Scalability",
			Summary: "Vertical vs horizontal scaling and where each one stops.",
			Tips:    []string{"State the expected load before picking an approach."},
			Related: []string{"load-balancing", "sharding"},
			Quiz: []QuizQuestion{{
				Question: "Adding more machines behind a load balancer is called?",
				Options:  []string{"Vertical scaling", "Horizontal scaling", "Sharding", "Caching"},
				Answer:   1,
			}},
		},
		{
			ID: "latency-throughput", Category: CategoryFundamentals, Title: "Latency & Throughput",
			Summary: "How long one request takes vs how many requests finish per second.",
			Related: []string{"caching"},
		},
		{
			ID: "cap-theorem", Category: CategoryFundamentals, Title: "CAP Theorem",
			Summary: "Under a partition, pick consistency or availability.",
			Related: []string{"replication", "consistency-models"},
			Quiz: []QuizQuestion{{
				Question: "Which property can never be given up in a distributed system?",
				Options:  []string{"Consistency", "Availability", "Partition tolerance"},
				Answer:   2,
			}},
		},
		{
			ID: "consistency-models", Category: CategoryFundamentals, Title: "Consistency Models",
			Summary: "Strong, eventual, causal and read-your-writes guarantees.",
			Related: []string{"cap-theorem"},
		},

		// Building blocks
		{
			ID: "load-balancing", Category: CategoryBuildingBlocks, Title: "Load Balancing",
			Summary: "L4 vs L7 balancers, health checks and balancing algorithms.",
			Tips:    []string{"Mention health checks and how unhealthy nodes are drained."},
		},
		{
			ID: "caching", Category: CategoryBuildingBlocks, Title: "Caching",
			Summary: "Cache-aside, write-through, eviction and invalidation.",
			Related: []string{"cdn"},
			Quiz: []QuizQuestion{{
				Question: "Which eviction policy drops the entry unused for the longest time?",
				Options:  []string{"FIFO", "LFU", "LRU", "Random"},
				Answer:   2,
			}},
		},
		{
			ID: "cdn", Category: CategoryBuildingBlocks, Title: "Content Delivery Networks",
			Summary: "Edge caches for static and cacheable dynamic content.",
		},
		{
			ID: "message-queues", Category: CategoryBuildingBlocks, Title: "Message Queues",
			Summary: "Decoupling producers and consumers; delivery guarantees.",
			Related: []string{"event-driven"},
		},
		{
			ID: "databases", Category: CategoryBuildingBlocks, Title: "Databases",
			Summary: "Relational vs document vs wide-column stores and indexes.",
			Related: []string{"replication", "sharding"},
		},

		// Patterns
		{
			ID: "replication", Category: CategoryPatterns, Title: "Replication",
			Summary: "Leader-follower, multi-leader and leaderless replication.",
		},
		{
			ID: "sharding", Category: CategoryPatterns, Title: "Sharding",
			Summary: "Partitioning data by key range or hash; rebalancing.",
			Tips:    []string{"Call out hot keys and how to split them."},
		},
		{
			ID: "event-driven", Category: CategoryPatterns, Title: "Event-Driven Architecture",
			Summary: "Events, event sourcing and CQRS.",
		},
		{
			ID: "rate-limiting", Category: CategoryPatterns, Title: "Rate Limiting",
			Summary: "Token bucket, leaky bucket and sliding window counters.",
		},

		// Problems
		{
			ID: "url-shortener", Category: CategoryProblems, Title: "Design a URL Shortener",
			Summary: "Key generation, redirects and read-heavy caching.",
			Related: []string{"caching", "databases"},
		},
		{
			ID: "chat-system", Category: CategoryProblems, Title: "Design a Chat System",
			Summary: "Persistent connections, fan-out and message ordering.",
			Related: []string{"message-queues"},
		},
		{
			ID: "news-feed", Category: CategoryProblems, Title: "Design a News Feed",
			Summary: "Fan-out on write vs read and ranking.",
			Related: []string{"caching", "sharding"},
		},
	}
}

func seedEdges() []Edge {
	return []Edge{
		{From: "scalability", To: "load-balancing"},
		{From: "latency-throughput", To: "caching"},
		{From: "caching", To: "cdn"},
		{From: "cap-theorem", To: "consistency-models"},
		{From: "consistency-models", To: "replication"},
		{From: "databases", To: "replication"},
		{From: "databases", To: "sharding"},
		{From: "message-queues", To: "event-driven"},
		{From: "load-balancing", To: "rate-limiting"},
		{From: "caching", To: "url-shortener"},
		{From: "message-queues", To: "chat-system"},
		{From: "sharding", To: "news-feed"},
	}
}
