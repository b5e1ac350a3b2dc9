// Copyright (c) 2025 H0llyW00dzZ All rights reserved.
//
// By accessing or using this software, you agree to be bound by the terms
// of the License Agreement, which you can find at LICENSE files.

// Package cost loads cloud cost report files and renders filtered summaries.
//
// A report is a JSON document whose top-level "Data" object maps vendor names to
// months ("YYYY-MM") and months to lists of cost entries:
//
//	{
//	  "Data": {
//	    "AWS": {
//	      "2024-04": [
//	        {"date": "2024-04-01", "cost": 12.5, "accountId": "A1",
//	         "productName": "EC2", "regionName": "us-east-1"}
//	      ]
//	    }
//	  }
//	}
//
// Documents are validated against an embedded [JSON Schema] before decoding, and
// object key order is preserved so vendors and months render in file order.
// Nothing is cached: every [Load] reads the file again.
//
// [JSON Schema]: https://json-schema.org
package cost
