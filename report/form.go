package report

import (
	"fmt"
	"io"
)

// WriteForm writes the standalone demo entry form. The page validates
// input client-side only; it has no backend wiring and tells the user so.
func WriteForm(w io.Writer) error {
	if _, err := io.WriteString(w, formHTML); err != nil {
		return fmt.Errorf("failed to write form: %w", err)
	}
	return nil
}

const formHTML = `<!DOCTYPE html>
<html>
<head>
    <title>Michelson interferometer data analysis</title>
    <meta charset="UTF-8">
    <meta name="viewport" content="width=device-width, initial-scale=1.0">
    <style>
        body { font-family: Arial, sans-serif; margin: 20px; background-color: #f5f5f5; }
        .container { max-width: 800px; margin: 0 auto; background-color: white; padding: 20px; border-radius: 10px; box-shadow: 0 0 10px rgba(0,0,0,0.1); }
        h1 { text-align: center; color: #2c3e50; }
        .form-group { margin-bottom: 15px; }
        label { display: block; margin-bottom: 5px; font-weight: bold; }
        input[type="text"], textarea { width: 100%; padding: 8px; border: 1px solid #ddd; border-radius: 4px; box-sizing: border-box; }
        button { background-color: #3498db; color: white; border: none; padding: 10px 15px; border-radius: 4px; cursor: pointer; font-size: 16px; }
        button:hover { background-color: #2980b9; }
        .data-input { display: none; }
        .instructions { background-color: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px; }
        .tab-container { display: flex; margin-bottom: 20px; }
        .tab { padding: 10px 15px; background-color: #eee; cursor: pointer; border: 1px solid #ddd; border-radius: 4px 4px 0 0; margin-right: 5px; }
        .tab.active { background-color: #3498db; color: white; }
        .error { color: red; margin-top: 5px; }
    </style>
</head>
<body>
    <div class="container">
        <h1>Michelson interferometer data analysis</h1>

        <div class="instructions">
            <h3>Instructions</h3>
            <p>This form collects fringe-count and mirror-displacement data for laser wavelength analysis.</p>
            <p><strong>Tip:</strong> rotate the fine-adjustment dial 3-4 turns in the measuring direction before recording data, to take up the screw backlash.</p>
        </div>

        <div class="tab-container">
            <div class="tab active" id="tab-pair">Pair entry</div>
            <div class="tab" id="tab-bulk">Bulk entry</div>
        </div>

        <div class="data-input" id="pair-input" style="display: block;">
            <div class="form-group">
                <label>Enter one "fringes displacement" pair per line, e.g. "0 0.09212":</label>
                <textarea id="pair-data" rows="10" placeholder="0 0.09212&#10;50 0.10865&#10;100 0.12514"></textarea>
                <div id="pair-error" class="error"></div>
            </div>
        </div>

        <div class="data-input" id="bulk-input">
            <div class="form-group">
                <label>Fringe counts (space separated):</label>
                <input type="text" id="fringes-data" placeholder="0 50 100 150 200 250">
                <div id="fringes-error" class="error"></div>
            </div>
            <div class="form-group">
                <label>Displacements (space separated, mm):</label>
                <input type="text" id="positions-data" placeholder="54.410 54.4275 54.4435 54.4591 54.4749 54.4908">
                <div id="positions-error" class="error"></div>
            </div>
        </div>

        <div class="form-group">
            <label>Advanced options:</label>
            <div>
                <input type="checkbox" id="correct-backlash" checked>
                <label for="correct-backlash" style="display: inline;">Correct screw backlash</label>
            </div>
            <div style="margin-top: 10px;">
                <label for="deviation">Fringe-center deviation (cm):</label>
                <input type="text" id="deviation" value="0" style="width: 100px;">
            </div>
            <div style="margin-top: 10px;">
                <label for="path-length">Distance to observation screen (cm):</label>
                <input type="text" id="path-length" value="41" style="width: 100px;">
            </div>
        </div>

        <div style="text-align: center; margin-top: 20px;">
            <button id="analyze-btn">Analyze</button>
        </div>

        <div id="results-container" style="margin-top: 30px; display: none;"></div>

        <script>
            document.getElementById('tab-pair').addEventListener('click', function() {
                document.getElementById('tab-pair').classList.add('active');
                document.getElementById('tab-bulk').classList.remove('active');
                document.getElementById('pair-input').style.display = 'block';
                document.getElementById('bulk-input').style.display = 'none';
            });

            document.getElementById('tab-bulk').addEventListener('click', function() {
                document.getElementById('tab-bulk').classList.add('active');
                document.getElementById('tab-pair').classList.remove('active');
                document.getElementById('bulk-input').style.display = 'block';
                document.getElementById('pair-input').style.display = 'none';
            });

            document.getElementById('analyze-btn').addEventListener('click', function() {
                let fringes = [];
                let positions = [];
                let validData = true;

                document.querySelectorAll('.error').forEach(el => el.textContent = '');

                if (document.getElementById('pair-input').style.display === 'block') {
                    const pairData = document.getElementById('pair-data').value.trim();
                    if (!pairData) {
                        document.getElementById('pair-error').textContent = 'Enter some data';
                        validData = false;
                    } else {
                        const lines = pairData.split('\n');
                        for (let i = 0; i < lines.length; i++) {
                            const line = lines[i].trim();
                            if (!line) continue;
                            const parts = line.split(/\s+/);
                            if (parts.length !== 2) {
                                document.getElementById('pair-error').textContent = 'Line ' + (i+1) + ': expected "fringes displacement"';
                                validData = false;
                                break;
                            }
                            const fringe = parseFloat(parts[0]);
                            const position = parseFloat(parts[1]);
                            if (isNaN(fringe) || isNaN(position)) {
                                document.getElementById('pair-error').textContent = 'Line ' + (i+1) + ': invalid number';
                                validData = false;
                                break;
                            }
                            fringes.push(fringe);
                            positions.push(position);
                        }
                    }
                } else {
                    const fringesInput = document.getElementById('fringes-data').value.trim();
                    const positionsInput = document.getElementById('positions-data').value.trim();
                    if (!fringesInput) {
                        document.getElementById('fringes-error').textContent = 'Enter fringe counts';
                        validData = false;
                    }
                    if (!positionsInput) {
                        document.getElementById('positions-error').textContent = 'Enter displacements';
                        validData = false;
                    }
                    if (validData) {
                        fringes = fringesInput.split(/\s+/).map(Number);
                        positions = positionsInput.split(/\s+/).map(Number);
                        if (fringes.some(isNaN)) {
                            document.getElementById('fringes-error').textContent = 'Fringe counts contain an invalid number';
                            validData = false;
                        }
                        if (positions.some(isNaN)) {
                            document.getElementById('positions-error').textContent = 'Displacements contain an invalid number';
                            validData = false;
                        }
                        if (fringes.length !== positions.length) {
                            document.getElementById('positions-error').textContent = 'Fringe and displacement counts differ';
                            validData = false;
                        }
                    }
                }

                if (validData && fringes.length < 2) {
                    document.getElementById('pair-error').textContent = 'At least 2 data points are required';
                    validData = false;
                }

                if (validData) {
                    document.getElementById('results-container').innerHTML =
                        '<div style="text-align: center; padding: 20px;">' +
                        '<h2>Demo page</h2>' +
                        '<p>This is a static demo with no backend; run the analyzer CLI to process data.</p>' +
                        '<p>You entered ' + fringes.length + ' data points.</p>' +
                        '</div>';
                    document.getElementById('results-container').style.display = 'block';
                }
            });
        </script>
    </div>
</body>
</html>
`
